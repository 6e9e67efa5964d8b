package authtoken

import (
	"errors"
	"testing"

	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/platform/id"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type sequenceIDGenerator struct {
	n int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.n++
	return string(rune('a'+g.n-1)) + "-token", nil
}

func TestStore_IssueAndVerify(t *testing.T) {
	store := NewStore(&sequenceIDGenerator{})
	principal := user.Principal{UserID: 1, Username: "ana"}

	token, err := store.Issue(t.Context(), principal)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	resolved, err := store.VerifyAccessToken(t.Context(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if resolved != principal {
		t.Fatalf("expected %+v, got %+v", principal, resolved)
	}
}

func TestStore_VerifyRejectsUnknownAndEmpty(t *testing.T) {
	store := NewStore(id.NewRandomGenerator())

	if _, err := store.VerifyAccessToken(t.Context(), "nope"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown token, got %v", err)
	}
	if _, err := store.VerifyAccessToken(t.Context(), "  "); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for empty token, got %v", err)
	}
}

func TestStore_ReloginKeepsOldTokenValid(t *testing.T) {
	store := NewStore(id.NewRandomGenerator())
	principal := user.Principal{UserID: 2, Username: "ben"}

	first, err := store.Issue(t.Context(), principal)
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	second, err := store.Issue(t.Context(), principal)
	if err != nil {
		t.Fatalf("second issue failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct tokens")
	}

	if _, err := store.VerifyAccessToken(t.Context(), first); err != nil {
		t.Fatalf("old token should stay valid: %v", err)
	}
}

func TestStore_Revoke(t *testing.T) {
	store := NewStore(id.NewRandomGenerator())

	token, err := store.Issue(t.Context(), user.Principal{UserID: 3, Username: "cleo"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	store.Revoke(t.Context(), token)
	if _, err := store.VerifyAccessToken(t.Context(), token); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after revoke, got %v", err)
	}
}
