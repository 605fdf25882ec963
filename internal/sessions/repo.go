package sessions

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session not found")

// Repo defines persistence operations for sessions.
type Repo interface {
	Create(ctx context.Context, session Session) error
	// GetByToken returns a non-expired session joined with its user.
	GetByToken(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
