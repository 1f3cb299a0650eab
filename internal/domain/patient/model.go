package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/arthur04112006/Pharm-Assist/internal/domain/triage"
)

// Patient maps to the patient table.
type Patient struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	AgeYears         int       `db:"age_years" json:"age_years"`
	Sex              string    `db:"sex" json:"sex"`
	Pregnant         bool      `db:"pregnant" json:"pregnant"`
	Lactating        bool      `db:"lactating" json:"lactating"`
	FrailElderly     bool      `db:"frail_elderly" json:"frail_elderly"`
	ChronicDiseases  *string   `db:"chronic_diseases" json:"chronic_diseases,omitempty"`
	MedicationsInUse *string   `db:"medications_in_use" json:"medications_in_use,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// frailElderlyAge is the cut-off above which a patient is treated as a
// frail elderly person even without an explicit flag.
const frailElderlyAge = 75

// Profile derives the scoring profile from the registration record.
// Pregnancy and lactation are never inferred, only carried when recorded.
func (p *Patient) Profile() triage.PatientProfile {
	return triage.PatientProfile{
		AgeYears:     p.AgeYears,
		AgeMonths:    p.AgeYears * 12,
		Pregnant:     p.Pregnant,
		Lactating:    p.Lactating,
		FrailElderly: p.FrailElderly || p.AgeYears >= frailElderlyAge,
	}
}
