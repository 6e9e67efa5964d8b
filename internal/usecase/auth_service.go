package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/user"
)

// TokenIssuer mints opaque access tokens for an authenticated principal.
type TokenIssuer interface {
	Issue(ctx context.Context, principal user.Principal) (string, error)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthService struct {
	userRepo user.Repository
	tokens   TokenIssuer
	now      func() time.Time
}

func NewAuthService(userRepo user.Repository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		now:      time.Now,
	}
}

// Register creates an account and logs it in immediately, returning the new
// user together with an access token. Usernames are unique case-insensitively.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (user.User, string, error) {
	ctx, span := startSpan(ctx, "AuthService.Register")
	defer span.End()

	item := user.User{
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.TrimSpace(input.Email),
		Password:  input.Password,
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return user.User{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.userRepo.GetByUsername(ctx, item.Username); err != nil {
		return user.User{}, "", fmt.Errorf("check username: %w", err)
	} else if exists {
		return user.User{}, "", fmt.Errorf("%w: username %q is already taken", ErrInvalidInput, item.Username)
	}

	created, err := s.userRepo.Create(ctx, item)
	if err != nil {
		return user.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(ctx, user.Principal{UserID: created.ID, Username: created.Username})
	if err != nil {
		return user.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	return created, token, nil
}

// Login exchanges credentials for an access token. Unknown usernames and
// wrong passwords fail identically so the endpoint does not confirm which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (user.User, string, error) {
	ctx, span := startSpan(ctx, "AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return user.User{}, "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, "", fmt.Errorf("get user: %w", err)
	}
	if !exists || item.Password != password {
		return user.User{}, "", fmt.Errorf("%w: invalid username or password", ErrInvalidInput)
	}

	token, err := s.tokens.Issue(ctx, user.Principal{UserID: item.ID, Username: item.Username})
	if err != nil {
		return user.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	return item, token, nil
}
