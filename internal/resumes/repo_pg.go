package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts the resume and returns it with generated fields filled in.
func (r *PGRepo) Create(ctx context.Context, resume Resume) (Resume, error) {
	const query = `
INSERT INTO resumes (user_id, filename, original_filename, file_size, file_type, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, upload_date`
	status := resume.Status
	if status == "" {
		status = StatusUploaded
	}
	err := r.DB.QueryRowContext(ctx, query,
		resume.UserID,
		resume.Filename,
		resume.OriginalFilename,
		resume.FileSize,
		resume.FileType,
		status,
	).Scan(&resume.ID, &resume.UploadDate)
	if err != nil {
		return Resume{}, err
	}
	resume.Status = status
	return resume, nil
}

// GetByID returns a resume by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Resume, error) {
	const query = `
SELECT id, user_id, filename, original_filename, file_size, file_type, upload_date, status
FROM resumes
WHERE id = $1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Filename,
		&resume.OriginalFilename,
		&resume.FileSize,
		&resume.FileType,
		&resume.UploadDate,
		&resume.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// SetStatus updates the lifecycle status of a resume.
func (r *PGRepo) SetStatus(ctx context.Context, id int64, status string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE resumes SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
