package sessions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new session.
func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO sessions (token, user_id, expires_at)
VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, session.Token, session.UserID, session.ExpiresAt)
	return err
}

// GetByToken returns a non-expired session joined with its user.
func (r *PGRepo) GetByToken(ctx context.Context, token string) (Session, error) {
	const query = `
SELECT s.token, s.user_id, s.expires_at, s.created_at, u.email, u.display_name
FROM sessions s
JOIN users u ON s.user_id = u.id
WHERE s.token = $1 AND s.expires_at > now()
LIMIT 1`
	var session Session
	var displayName sql.NullString
	err := r.DB.QueryRowContext(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
		&session.Email,
		&displayName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if displayName.Valid {
		session.DisplayName = displayName.String
	}
	return session, nil
}

// Delete removes a session by token.
func (r *PGRepo) Delete(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

var _ Repo = (*PGRepo)(nil)
