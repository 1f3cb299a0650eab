package triage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type triageRecordRepoPG struct{ pool *pgxpool.Pool }

func NewTriageRecordRepoPG(pool *pgxpool.Pool) TriageRecordRepository {
	return &triageRecordRepoPG{pool: pool}
}

const recordCols = `id, patient_id, module, total_score, risk, referral, confidence, notes, created_at`

func (r *triageRecordRepoPG) scanRecord(row pgx.Row) (*TriageRecord, error) {
	var rec TriageRecord
	err := row.Scan(&rec.ID, &rec.PatientID, &rec.Module, &rec.TotalScore, &rec.Risk,
		&rec.Referral, &rec.Confidence, &rec.Notes, &rec.CreatedAt)
	return &rec, err
}

func (r *triageRecordRepoPG) Create(ctx context.Context, rec *TriageRecord) error {
	rec.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO triage_record (id, patient_id, module, total_score, risk, referral, confidence, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rec.ID, rec.PatientID, rec.Module, rec.TotalScore, rec.Risk, rec.Referral, rec.Confidence, rec.Notes)
	return err
}

func (r *triageRecordRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*TriageRecord, error) {
	return r.scanRecord(r.pool.QueryRow(ctx, `SELECT `+recordCols+` FROM triage_record WHERE id = $1`, id))
}

func (r *triageRecordRepoPG) List(ctx context.Context, limit, offset int) ([]*TriageRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM triage_record`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM triage_record ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*TriageRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, nil
}

func (r *triageRecordRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TriageRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM triage_record WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM triage_record WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*TriageRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, nil
}
