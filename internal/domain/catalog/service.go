package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service manages the medication catalog. ActiveMedications degrades to
// the embedded catalog when the database has no rows or is unreachable,
// so the recommender keeps working on a fresh install.
type Service struct {
	repo   MedicationRepository
	logger zerolog.Logger
}

func NewService(repo MedicationRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, m *Medication) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.ActiveIngredient == "" {
		return fmt.Errorf("active_ingredient is required")
	}
	if m.Indication == "" {
		return fmt.Errorf("indication is required")
	}
	if m.Priority < 1 || m.Priority > 5 {
		return fmt.Errorf("priority must be between 1 and 5")
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, m *Medication) error {
	if m.Priority < 1 || m.Priority > 5 {
		return fmt.Errorf("priority must be between 1 and 5")
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// ActiveMedications returns all active catalog rows, falling back to the
// embedded catalog. The second return value reports whether the fallback
// was used.
func (s *Service) ActiveMedications(ctx context.Context) ([]*Medication, bool, error) {
	if s.repo != nil {
		meds, err := s.repo.ListActive(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("catalog unavailable, using embedded medications")
		} else if len(meds) > 0 {
			return meds, false, nil
		}
	}

	fallback, err := Fallback()
	if err != nil {
		return nil, true, err
	}
	meds := make([]*Medication, 0, len(fallback))
	for _, f := range fallback {
		meds = append(meds, f.ToMedication())
	}
	return meds, true, nil
}

// Seed inserts the embedded catalog into an empty medication table.
func (s *Service) Seed(ctx context.Context) (int, error) {
	existing, _, err := s.repo.List(ctx, 1, 0)
	if err != nil {
		return 0, fmt.Errorf("check catalog: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	fallback, err := Fallback()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, f := range fallback {
		if err := s.repo.Create(ctx, f.ToMedication()); err != nil {
			return count, fmt.Errorf("seed %s: %w", f.Name, err)
		}
		count++
	}
	return count, nil
}
