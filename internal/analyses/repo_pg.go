package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateResult inserts the record and returns it with generated fields filled in.
func (r *PGRepo) CreateResult(ctx context.Context, rec Record) (Record, error) {
	blob, err := json.Marshal(rec.Result)
	if err != nil {
		return Record{}, fmt.Errorf("encode analysis blob: %w", err)
	}

	const query = `
INSERT INTO analysis_results (resume_id, user_id, overall_score, impact_score, presentation_score, competencies_score, ats_score, degraded, analysis_data)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at`
	err = r.DB.QueryRowContext(ctx, query,
		rec.ResumeID,
		rec.UserID,
		rec.OverallScore,
		rec.ImpactScore,
		rec.PresentationScore,
		rec.CompetenciesScore,
		rec.ATSScore,
		rec.Degraded,
		blob,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

const selectRecord = `
SELECT a.id, a.resume_id, a.user_id, a.overall_score, a.impact_score, a.presentation_score, a.competencies_score, a.ats_score, a.degraded, a.analysis_data, a.created_at,
       r.original_filename, r.upload_date
FROM analysis_results a
JOIN resumes r ON a.resume_id = r.id`

// GetByID returns the record joined with its resume, scoped to the user.
func (r *PGRepo) GetByID(ctx context.Context, id, userID int64) (Record, error) {
	row := r.DB.QueryRowContext(ctx, selectRecord+` WHERE a.id = $1 AND a.user_id = $2`, id, userID)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// ListByUser returns the user's records joined with resumes, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Record, error) {
	rows, err := r.DB.QueryContext(ctx, selectRecord+` WHERE a.user_id = $1 ORDER BY a.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var blob []byte
	err := row.Scan(
		&rec.ID,
		&rec.ResumeID,
		&rec.UserID,
		&rec.OverallScore,
		&rec.ImpactScore,
		&rec.PresentationScore,
		&rec.CompetenciesScore,
		&rec.ATSScore,
		&rec.Degraded,
		&blob,
		&rec.CreatedAt,
		&rec.OriginalFilename,
		&rec.UploadDate,
	)
	if err != nil {
		return Record{}, err
	}
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &rec.Result); err != nil {
			return Record{}, fmt.Errorf("decode analysis blob: %w", err)
		}
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)
