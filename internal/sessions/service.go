package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service issues and resolves login sessions.
type Service struct {
	repo Repo
	ttl  time.Duration
}

// NewService constructs a Service. ttl bounds session lifetime.
func NewService(repo Repo, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{repo: repo, ttl: ttl}
}

// Issue creates a session for the user and returns its token.
func (s *Service) Issue(ctx context.Context, userID int64) (Session, error) {
	session := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Get returns the non-expired session for a token.
func (s *Service) Get(ctx context.Context, token string) (Session, error) {
	return s.repo.GetByToken(ctx, token)
}

// Revoke deletes a session by token.
func (s *Service) Revoke(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}

// TTLSeconds returns the session lifetime in whole seconds, for cookies.
func (s *Service) TTLSeconds() int {
	return int(s.ttl / time.Second)
}
