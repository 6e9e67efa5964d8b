package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
)

type staticTokenIssuer struct {
	token string
}

func (i staticTokenIssuer) Issue(_ context.Context, _ user.Principal) (string, error) {
	return i.token, nil
}

func TestAuthService_Register_IssuesToken(t *testing.T) {
	userRepo := memory.NewUserRepository(nil)
	service := NewAuthService(userRepo, staticTokenIssuer{token: "tok-001"})

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, token, err := service.Register(t.Context(), RegisterInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token != "tok-001" {
		t.Fatalf("expected token tok-001, got %s", token)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned user id, got 0")
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("expected created at %v, got %v", now, created.CreatedAt)
	}
}

func TestAuthService_Register_RejectsDuplicateUsername(t *testing.T) {
	userRepo := memory.NewUserRepository(nil)
	service := NewAuthService(userRepo, staticTokenIssuer{token: "tok-001"})

	input := RegisterInput{Username: "ana", Email: "ana@example.com", Password: "secret"}
	if _, _, err := service.Register(t.Context(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input.Username = "ANA"
	_, _, err := service.Register(t.Context(), input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for duplicate username, got %v", err)
	}
}

func TestAuthService_Register_RejectsMissingFields(t *testing.T) {
	service := NewAuthService(memory.NewUserRepository(nil), staticTokenIssuer{token: "tok"})

	_, _, err := service.Register(t.Context(), RegisterInput{Username: "ana", Email: "", Password: "pw"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing email, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	userRepo := memory.NewUserRepository(nil)
	service := NewAuthService(userRepo, staticTokenIssuer{token: "tok-007"})

	if _, _, err := service.Register(t.Context(), RegisterInput{
		Username: "ben", Email: "ben@example.com", Password: "hunter2",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, token, err := service.Login(t.Context(), "ben", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "tok-007" {
		t.Fatalf("expected token tok-007, got %s", token)
	}

	if _, _, err := service.Login(t.Context(), "ben", "wrong"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for wrong password, got %v", err)
	}
	if _, _, err := service.Login(t.Context(), "ghost", "hunter2"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown username, got %v", err)
	}
}
