package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("a valid email is required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// Service contains account business logic.
type Service struct {
	repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Register creates a password-based account.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}
	if len(password) < 8 {
		return User{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, User{
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		AuthProvider: "email",
		PasswordHash: string(hash),
	})
}

// Authenticate verifies email/password and returns the user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if user.PasswordHash == "" {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetOrCreateOAuth finds a user by email or creates one for an OAuth login.
func (s *Service) GetOrCreateOAuth(ctx context.Context, email, displayName, provider string) (User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}
	created, err := s.repo.Create(ctx, User{
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		AuthProvider: provider,
	})
	if errors.Is(err, ErrExists) {
		// Lost a race with a concurrent first login.
		return s.repo.GetByEmail(ctx, email)
	}
	return created, err
}

// GetByID returns a user by id.
func (s *Service) GetByID(ctx context.Context, userID int64) (User, error) {
	return s.repo.GetByID(ctx, userID)
}
