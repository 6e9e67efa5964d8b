// Package authtoken keeps issued access tokens in process memory. Tokens are
// opaque random strings; there is no expiry, signing or refresh, matching the
// demo credential model of the rest of the system.
package authtoken

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/platform/id"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type Store struct {
	mu     sync.RWMutex
	tokens map[string]user.Principal
	ids    id.Generator
}

func NewStore(ids id.Generator) *Store {
	return &Store{
		tokens: make(map[string]user.Principal),
		ids:    ids,
	}
}

// Issue mints a fresh token for the principal. Logging in again issues a new
// token without revoking earlier ones.
func (s *Store) Issue(_ context.Context, principal user.Principal) (string, error) {
	if principal.UserID <= 0 {
		return "", errors.New("principal user id is required")
	}

	token, err := s.ids.NewID()
	if err != nil {
		return "", errors.Wrap(err, "generate token")
	}

	s.mu.Lock()
	s.tokens[token] = principal
	s.mu.Unlock()

	return token, nil
}

// VerifyAccessToken resolves a presented token to its principal.
func (s *Store) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "token is required")
	}

	s.mu.RLock()
	principal, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "unknown token")
	}

	return principal, nil
}

// Revoke forgets a token. Unknown tokens are a no-op.
func (s *Store) Revoke(_ context.Context, token string) {
	s.mu.Lock()
	delete(s.tokens, strings.TrimSpace(token))
	s.mu.Unlock()
}
