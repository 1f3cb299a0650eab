package triage

import (
	"time"

	"github.com/google/uuid"
)

// Risk levels, lowest to highest.
const (
	RiskLow      = "baixo"
	RiskModerate = "medio"
	RiskHigh     = "alto"
)

// Weight categories.
const (
	CategorySymptom  = "sintoma"
	CategorySeverity = "gravidade"
	CategoryDuration = "duracao"
	CategoryHistory  = "historico"
	CategoryProfile  = "perfil"
)

// QuestionWeight is the registry entry for one question.
type QuestionWeight struct {
	Weight   float64 `json:"weight"`
	Category string  `json:"category"`
	Critical bool    `json:"critical"`
}

// PatientProfile carries the registration data that modulates scoring.
type PatientProfile struct {
	AgeYears     int  `json:"age_years"`
	AgeMonths    int  `json:"age_months"`
	Pregnant     bool `json:"pregnant"`
	Lactating    bool `json:"lactating"`
	FrailElderly bool `json:"frail_elderly"`
}

// ScoringResult is the outcome of weighing one answered interview.
type ScoringResult struct {
	Module       string             `json:"module"`
	Total        float64            `json:"total"`
	ByCategory   map[string]float64 `json:"by_category"`
	Risk         string             `json:"risk"`
	Referral     bool               `json:"referral"`
	CriticalHits []string           `json:"critical_hits,omitempty"`
	RedFlags     []string           `json:"red_flags,omitempty"`
	Answered     int                `json:"answered"`
	Confidence   float64            `json:"confidence"`
}

// Thresholds are the risk cut-offs applied to the total score.
type Thresholds struct {
	Moderate float64
	High     float64
	Referral float64
}

// DefaultThresholds returns the calibrated production cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{Moderate: 15.0, High: 30.0, Referral: 25.0}
}

// TriageRecord maps to the triage_record table.
type TriageRecord struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	PatientID  *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	Module     string     `db:"module" json:"module"`
	TotalScore float64    `db:"total_score" json:"total_score"`
	Risk       string     `db:"risk" json:"risk"`
	Referral   bool       `db:"referral" json:"referral"`
	Confidence float64    `db:"confidence" json:"confidence"`
	Notes      *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}
