package sessions

import (
	"context"
	"sync"
	"time"
)

// UserLookup resolves user fields joined onto sessions in the SQL
// implementation. The memory repo needs it injected.
type UserLookup func(ctx context.Context, userID int64) (email, displayName string, err error)

// MemoryRepo stores sessions in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	byToken map[string]Session
	users   UserLookup
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo(users UserLookup) *MemoryRepo {
	return &MemoryRepo{
		byToken: make(map[string]Session),
		users:   users,
	}
}

// Create stores the session.
func (r *MemoryRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[session.Token] = session
	return nil
}

// GetByToken returns a non-expired session with user fields attached.
func (r *MemoryRepo) GetByToken(ctx context.Context, token string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	session, ok := r.byToken[token]
	r.mu.RUnlock()
	if !ok || time.Now().After(session.ExpiresAt) {
		return Session{}, ErrNotFound
	}
	if r.users != nil {
		email, displayName, err := r.users(ctx, session.UserID)
		if err != nil {
			return Session{}, ErrNotFound
		}
		session.Email = email
		session.DisplayName = displayName
	}
	return session, nil
}

// Delete removes a session by token.
func (r *MemoryRepo) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byToken, token)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
