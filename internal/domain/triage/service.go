package triage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arthur04112006/Pharm-Assist/internal/domain/interview"
)

// Service scores answered interviews and persists triage records.
type Service struct {
	interviews *interview.Service
	engine     *Engine
	records    TriageRecordRepository
}

func NewService(interviews *interview.Service, engine *Engine, records TriageRecordRepository) *Service {
	return &Service{interviews: interviews, engine: engine, records: records}
}

// Score extracts the module's questions and weighs the answers against
// them. The unfiltered extraction is used so that profile questions
// answered explicitly still resolve.
func (s *Service) Score(module string, answers map[string]interface{}, profile PatientProfile) (*ScoringResult, error) {
	questions, err := s.interviews.Questions(module, false)
	if err != nil {
		return nil, err
	}
	return s.engine.Score(module, questions, answers, profile)
}

// SaveRecord persists a completed triage.
func (s *Service) SaveRecord(ctx context.Context, rec *TriageRecord) error {
	if rec.Module == "" {
		return fmt.Errorf("module is required")
	}
	if rec.Risk != RiskLow && rec.Risk != RiskModerate && rec.Risk != RiskHigh {
		return fmt.Errorf("invalid risk: %s", rec.Risk)
	}
	return s.records.Create(ctx, rec)
}

func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*TriageRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *Service) ListRecords(ctx context.Context, limit, offset int) ([]*TriageRecord, int, error) {
	return s.records.List(ctx, limit, offset)
}

func (s *Service) ListRecordsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TriageRecord, int, error) {
	return s.records.ListByPatient(ctx, patientID, limit, offset)
}
