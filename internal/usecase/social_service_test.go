package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
	"github.com/ballboxd/ballboxd/internal/platform/resilience"
)

func newSocialService() *SocialService {
	userRepo := memory.NewUserRepository([]user.User{
		{ID: 1, Username: "ana", Email: "ana@example.com", Password: "pw"},
		{ID: 2, Username: "ben", Email: "ben@example.com", Password: "pw"},
		{ID: 3, Username: "cleo", Email: "cleo@example.com", Password: "pw"},
	})

	return NewSocialService(
		userRepo,
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewSocialRepository(),
		resilience.NewKeyedMutex(),
	)
}

func TestSocialService_FollowUser(t *testing.T) {
	service := newSocialService()
	service.now = func() time.Time { return time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC) }

	state, err := service.FollowUser(t.Context(), 1, "ben")
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if !state.Following {
		t.Fatalf("expected following=true")
	}
	if state.Counts.Followers != 1 {
		t.Fatalf("expected 1 follower for ben, got %d", state.Counts.Followers)
	}

	// Repeating the follow is a no-op.
	state, err = service.FollowUser(t.Context(), 1, "ben")
	if err != nil {
		t.Fatalf("repeat follow failed: %v", err)
	}
	if state.Counts.Followers != 1 {
		t.Fatalf("expected follower count unchanged, got %d", state.Counts.Followers)
	}
}

func TestSocialService_FollowUser_SelfRejected(t *testing.T) {
	service := newSocialService()

	if _, err := service.FollowUser(t.Context(), 1, "ana"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for self-follow, got %v", err)
	}
}

func TestSocialService_FollowUser_UnknownTarget(t *testing.T) {
	service := newSocialService()

	if _, err := service.FollowUser(t.Context(), 1, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSocialService_UnfollowUser_Idempotent(t *testing.T) {
	service := newSocialService()

	if _, err := service.FollowUser(t.Context(), 1, "ben"); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	state, err := service.UnfollowUser(t.Context(), 1, "ben")
	if err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if state.Following || state.Counts.Followers != 0 {
		t.Fatalf("expected edge removed, got %+v", state)
	}

	// Unfollowing again never errors.
	if _, err := service.UnfollowUser(t.Context(), 1, "ben"); err != nil {
		t.Fatalf("repeat unfollow failed: %v", err)
	}
}

func TestSocialService_FollowTeam(t *testing.T) {
	service := newSocialService()

	state, err := service.FollowTeam(t.Context(), 1, memory.TeamIDLiverpool)
	if err != nil {
		t.Fatalf("follow team failed: %v", err)
	}
	if !state.Following || state.Followers != 1 {
		t.Fatalf("unexpected team follow state: %+v", state)
	}

	if _, err := service.FollowTeam(t.Context(), 2, memory.TeamIDLiverpool); err != nil {
		t.Fatalf("second follower failed: %v", err)
	}
	state, err = service.UnfollowTeam(t.Context(), 1, memory.TeamIDLiverpool)
	if err != nil {
		t.Fatalf("unfollow team failed: %v", err)
	}
	if state.Following || state.Followers != 1 {
		t.Fatalf("expected one remaining follower, got %+v", state)
	}
}

func TestSocialService_FollowTeam_UnknownTeam(t *testing.T) {
	service := newSocialService()

	if _, err := service.FollowTeam(t.Context(), 1, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown team, got %v", err)
	}
}
