package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// mockMedicationRepo is an in-memory MedicationRepository.
type mockMedicationRepo struct {
	meds    map[uuid.UUID]*Medication
	listErr error
}

func newMockMedicationRepo() *mockMedicationRepo {
	return &mockMedicationRepo{meds: make(map[uuid.UUID]*Medication)}
}

func (m *mockMedicationRepo) Create(ctx context.Context, med *Medication) error {
	if med.ID == uuid.Nil {
		med.ID = uuid.New()
	}
	med.Active = true
	m.meds[med.ID] = med
	return nil
}

func (m *mockMedicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	med, ok := m.meds[id]
	if !ok {
		return nil, fmt.Errorf("medication not found")
	}
	return med, nil
}

func (m *mockMedicationRepo) Update(ctx context.Context, med *Medication) error {
	if _, ok := m.meds[med.ID]; !ok {
		return fmt.Errorf("medication not found")
	}
	m.meds[med.ID] = med
	return nil
}

func (m *mockMedicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.meds[id]; !ok {
		return fmt.Errorf("medication not found")
	}
	delete(m.meds, id)
	return nil
}

func (m *mockMedicationRepo) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var out []*Medication
	for _, med := range m.meds {
		out = append(out, med)
	}
	return out, len(out), nil
}

func (m *mockMedicationRepo) ListActive(ctx context.Context) ([]*Medication, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*Medication
	for _, med := range m.meds {
		if med.Active {
			out = append(out, med)
		}
	}
	return out, nil
}

func newTestService() (*Service, *mockMedicationRepo) {
	repo := newMockMedicationRepo()
	return NewService(repo, zerolog.Nop()), repo
}

func TestService_Create(t *testing.T) {
	svc, repo := newTestService()

	med := &Medication{
		Name:             "Tylenol",
		ActiveIngredient: "Paracetamol",
		TherapeuticClass: "analgesico",
		Indication:       "Dor leve a moderada",
		Priority:         1,
	}
	if err := svc.Create(context.Background(), med); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if len(repo.meds) != 1 {
		t.Errorf("expected 1 stored medication, got %d", len(repo.meds))
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		med  Medication
	}{
		{"missing name", Medication{ActiveIngredient: "x", Indication: "y", Priority: 1}},
		{"missing ingredient", Medication{Name: "x", Indication: "y", Priority: 1}},
		{"missing indication", Medication{Name: "x", ActiveIngredient: "y", Priority: 1}},
		{"priority too low", Medication{Name: "x", ActiveIngredient: "y", Indication: "z", Priority: 0}},
		{"priority too high", Medication{Name: "x", ActiveIngredient: "y", Indication: "z", Priority: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			med := tt.med
			if err := svc.Create(context.Background(), &med); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestService_ActiveMedications_FromRepo(t *testing.T) {
	svc, repo := newTestService()
	repo.Create(context.Background(), &Medication{Name: "Tylenol", ActiveIngredient: "Paracetamol", Indication: "dor", Priority: 1})

	meds, degraded, err := svc.ActiveMedications(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if degraded {
		t.Error("expected repo-backed result, not fallback")
	}
	if len(meds) != 1 {
		t.Errorf("expected 1 medication, got %d", len(meds))
	}
}

func TestService_ActiveMedications_FallsBackWhenEmpty(t *testing.T) {
	svc, _ := newTestService()

	meds, degraded, err := svc.ActiveMedications(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !degraded {
		t.Error("expected fallback on empty table")
	}
	if len(meds) != 26 {
		t.Errorf("expected 26 embedded medications, got %d", len(meds))
	}
}

func TestService_ActiveMedications_FallsBackOnError(t *testing.T) {
	svc, repo := newTestService()
	repo.listErr = fmt.Errorf("connection refused")

	meds, degraded, err := svc.ActiveMedications(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !degraded {
		t.Error("expected fallback on repo error")
	}
	if len(meds) == 0 {
		t.Error("expected embedded medications")
	}
}

func TestService_Seed(t *testing.T) {
	svc, repo := newTestService()

	count, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if count != 26 {
		t.Errorf("expected 26 seeded medications, got %d", count)
	}
	if len(repo.meds) != 26 {
		t.Errorf("expected 26 stored medications, got %d", len(repo.meds))
	}

	// Second run must be a no-op.
	count, err = svc.Seed(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected 0 on second seed, got %d", count)
	}
}
