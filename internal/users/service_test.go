package users

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterValidation(t *testing.T) {
	service := NewService(NewMemoryRepo())

	if _, err := service.Register(context.Background(), "not-an-email", "password123", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("err = %v, want ErrInvalidEmail", err)
	}
	if _, err := service.Register(context.Background(), "a@b.co", "short", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	service := NewService(NewMemoryRepo())

	user, err := service.Register(context.Background(), "jane@example.com", "password123", "Jane")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected generated id")
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in plain text")
	}

	got, err := service.Authenticate(context.Background(), "jane@example.com", "password123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("ID = %d, want %d", got.ID, user.ID)
	}

	if _, err := service.Authenticate(context.Background(), "jane@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := service.Authenticate(context.Background(), "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewService(NewMemoryRepo())

	if _, err := service.Register(context.Background(), "jane@example.com", "password123", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := service.Register(context.Background(), "jane@example.com", "password456", ""); !errors.Is(err, ErrExists) {
		t.Fatalf("err = %v, want ErrExists", err)
	}
}

func TestGetOrCreateOAuth(t *testing.T) {
	service := NewService(NewMemoryRepo())

	first, err := service.GetOrCreateOAuth(context.Background(), "jane@example.com", "Jane", "google")
	if err != nil {
		t.Fatalf("GetOrCreateOAuth: %v", err)
	}
	if first.AuthProvider != "google" {
		t.Fatalf("AuthProvider = %q", first.AuthProvider)
	}

	second, err := service.GetOrCreateOAuth(context.Background(), "jane@example.com", "Jane", "google")
	if err != nil {
		t.Fatalf("GetOrCreateOAuth second: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("second login created a new user")
	}

	// OAuth accounts have no usable password.
	if _, err := service.Authenticate(context.Background(), "jane@example.com", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
