package triage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arthur04112006/Pharm-Assist/internal/domain/interview"
	"github.com/arthur04112006/Pharm-Assist/internal/platform/cache"
	"github.com/arthur04112006/Pharm-Assist/internal/scripts"
)

// mockRecordRepo is an in-memory TriageRecordRepository.
type mockRecordRepo struct {
	records map[uuid.UUID]*TriageRecord
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: make(map[uuid.UUID]*TriageRecord)}
}

func (m *mockRecordRepo) Create(ctx context.Context, rec *TriageRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now()
	m.records[rec.ID] = rec
	return nil
}

func (m *mockRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*TriageRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("triage record not found")
	}
	return rec, nil
}

func (m *mockRecordRepo) List(ctx context.Context, limit, offset int) ([]*TriageRecord, int, error) {
	var out []*TriageRecord
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, len(out), nil
}

func (m *mockRecordRepo) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TriageRecord, int, error) {
	var out []*TriageRecord
	for _, rec := range m.records {
		if rec.PatientID != nil && *rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	return out, len(out), nil
}

func newTestService(t *testing.T) (*Service, *mockRecordRepo) {
	t.Helper()
	registry := NewRegistry()
	interviews := interview.NewService(scripts.NewStore(""), registry, cache.NewLRU(16, time.Minute), zerolog.Nop())
	engine := NewEngine(registry, DefaultThresholds())
	repo := newMockRecordRepo()
	return NewService(interviews, engine, repo), repo
}

func TestService_Score_BenignCough(t *testing.T) {
	svc, _ := newTestService(t)

	// A short dry cough with every danger sign denied.
	result, err := svc.Score("tosse", map[string]interface{}{
		"tosse_6":  2.0,
		"tosse_8":  true,
		"tosse_12": false,
		"tosse_13": false,
	}, PatientProfile{AgeYears: 30})
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	if result.Risk != RiskLow {
		t.Errorf("expected risk %s, got %s (total %g)", RiskLow, result.Risk, result.Total)
	}
	if result.Referral {
		t.Error("expected no referral")
	}
	if len(result.CriticalHits) != 0 {
		t.Errorf("unexpected critical hits: %v", result.CriticalHits)
	}
}

func TestService_Score_DyspneaForcesReferral(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Score("tosse", map[string]interface{}{
		"tosse_12": true, // breathing difficulty
	}, PatientProfile{AgeYears: 30})
	if err != nil {
		t.Fatal(err)
	}

	if result.Risk != RiskHigh || !result.Referral {
		t.Errorf("expected alto with referral, got %s referral=%t", result.Risk, result.Referral)
	}
}

func TestService_Score_UnknownModule(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Score("gripe", map[string]interface{}{"gripe_1": true}, PatientProfile{}); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestService_Score_UnknownQuestion(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Score("tosse", map[string]interface{}{"tosse_999": true}, PatientProfile{})
	if err == nil {
		t.Fatal("expected error for unknown question id")
	}
}

func TestService_SaveRecord(t *testing.T) {
	svc, repo := newTestService(t)

	rec := &TriageRecord{
		Module:     "tosse",
		TotalScore: 12.5,
		Risk:       RiskModerate,
		Confidence: 0.4,
	}
	if err := svc.SaveRecord(context.Background(), rec); err != nil {
		t.Fatalf("SaveRecord() error: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Error("expected ID to be assigned")
	}
	if len(repo.records) != 1 {
		t.Errorf("expected 1 stored record, got %d", len(repo.records))
	}

	got, err := svc.GetRecord(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("GetRecord() error: %v", err)
	}
	if got.Module != "tosse" || got.Risk != RiskModerate {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestService_SaveRecord_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.SaveRecord(context.Background(), &TriageRecord{Risk: RiskLow}); err == nil {
		t.Error("expected error for missing module")
	}
	if err := svc.SaveRecord(context.Background(), &TriageRecord{Module: "tosse", Risk: "critico"}); err == nil {
		t.Error("expected error for invalid risk")
	}
}

func TestService_ListRecordsByPatient(t *testing.T) {
	svc, _ := newTestService(t)

	patientID := uuid.New()
	otherID := uuid.New()
	for _, pid := range []uuid.UUID{patientID, patientID, otherID} {
		id := pid
		rec := &TriageRecord{Module: "febre", Risk: RiskLow, PatientID: &id}
		if err := svc.SaveRecord(context.Background(), rec); err != nil {
			t.Fatal(err)
		}
	}

	items, total, err := svc.ListRecordsByPatient(context.Background(), patientID, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected 2 records for patient, got %d (total %d)", len(items), total)
	}
}
