package triage

import (
	"context"

	"github.com/google/uuid"
)

// TriageRecordRepository persists completed triages.
type TriageRecordRepository interface {
	Create(ctx context.Context, rec *TriageRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*TriageRecord, error)
	List(ctx context.Context, limit, offset int) ([]*TriageRecord, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TriageRecord, int, error)
}
