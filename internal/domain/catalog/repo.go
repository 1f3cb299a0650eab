package catalog

import (
	"context"

	"github.com/google/uuid"
)

// MedicationRepository is the persistence interface for the catalog.
type MedicationRepository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medication, error)
	Update(ctx context.Context, m *Medication) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Medication, int, error)
	ListActive(ctx context.Context) ([]*Medication, error)
}
