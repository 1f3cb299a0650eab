package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arthur04112006/Pharm-Assist/internal/domain/triage"
)

var validSexes = map[string]bool{"F": true, "M": true, "O": true}

type Service struct {
	repo PatientRepository
}

func NewService(repo PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.AgeYears < 0 || p.AgeYears > 130 {
		return fmt.Errorf("age_years out of range")
	}
	if p.Sex != "" && !validSexes[p.Sex] {
		return fmt.Errorf("invalid sex: %s", p.Sex)
	}
	if p.Pregnant && p.Sex == "M" {
		return fmt.Errorf("pregnant is not compatible with sex M")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if p.AgeYears < 0 || p.AgeYears > 130 {
		return fmt.Errorf("age_years out of range")
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// ProfileFor loads a registration and derives its scoring profile.
func (s *Service) ProfileFor(ctx context.Context, id uuid.UUID) (triage.PatientProfile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return triage.PatientProfile{}, err
	}
	return p.Profile(), nil
}
