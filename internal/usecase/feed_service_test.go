package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/domain/social"
	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
)

func newFeedFixture(t *testing.T, seedRatings []rating.Rating) (*FeedService, *memory.SocialRepository) {
	t.Helper()

	userRepo := memory.NewUserRepository([]user.User{
		{ID: 1, Username: "ana", Email: "ana@example.com", Password: "pw"},
		{ID: 2, Username: "ben", Email: "ben@example.com", Password: "pw"},
		{ID: 3, Username: "cleo", Email: "cleo@example.com", Password: "pw"},
	})
	socialRepo := memory.NewSocialRepository()

	service := NewFeedService(
		userRepo,
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewTournamentRepository(memory.SeedTournaments()),
		memory.NewRatingRepository(seedRatings),
		socialRepo,
	)

	return service, socialRepo
}

func TestFeedService_Friends(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	longReview := strings.Repeat("great stuff ", 20)
	service, socialRepo := newFeedFixture(t, []rating.Rating{
		{ID: 1, UserID: 2, MatchID: 1, Score: 90, MinutesWatched: rating.WatchedFull, Review: longReview, CreatedAt: base},
		{ID: 2, UserID: 3, MatchID: 4, Score: 55, MinutesWatched: rating.WatchedOneHalf, CreatedAt: base.Add(time.Hour)},
		{ID: 3, UserID: 1, MatchID: 1, Score: 70, MinutesWatched: rating.WatchedFull, CreatedAt: base.Add(2 * time.Hour)},
	})

	for _, target := range []int64{2, 3} {
		err := socialRepo.AddUserFollow(t.Context(), social.UserFollow{FollowerID: 1, FollowingID: target, CreatedAt: base})
		if err != nil {
			t.Fatalf("seed follow failed: %v", err)
		}
	}

	items, total, err := service.Friends(t.Context(), 1, 1, 20)
	if err != nil {
		t.Fatalf("friends feed failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	// Newest first, and the caller's own ratings are absent.
	if items[0].Actor.Username != "cleo" || items[1].Actor.Username != "ben" {
		t.Fatalf("unexpected feed order: %s then %s", items[0].Actor.Username, items[1].Actor.Username)
	}

	if len([]rune(items[1].Snippet)) != feedSnippetLen {
		t.Fatalf("expected snippet truncated to %d chars, got %d", feedSnippetLen, len([]rune(items[1].Snippet)))
	}
	if items[1].Rating.Review != longReview {
		t.Fatalf("stored review must stay untouched")
	}
	if items[1].HomeTeam.Name != "Real Madrid" || items[1].Tournament.Name != "La Liga" {
		t.Fatalf("expected match enrichment, got %+v", items[1])
	}
}

func TestFeedService_Friends_UnresolvedAuthorExcludedFromTotal(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	service, socialRepo := newFeedFixture(t, []rating.Rating{
		{ID: 1, UserID: 2, MatchID: 1, Score: 90, MinutesWatched: rating.WatchedFull, CreatedAt: base},
		{ID: 2, UserID: 9, MatchID: 4, Score: 55, MinutesWatched: rating.WatchedOneHalf, CreatedAt: base.Add(time.Hour)},
		{ID: 3, UserID: 2, MatchID: 2, Score: 80, MinutesWatched: rating.WatchedFull, CreatedAt: base.Add(2 * time.Hour)},
	})

	// User 9 has no account record; its ratings must not count against paging.
	for _, target := range []int64{2, 9} {
		err := socialRepo.AddUserFollow(t.Context(), social.UserFollow{FollowerID: 1, FollowingID: target, CreatedAt: base})
		if err != nil {
			t.Fatalf("seed follow failed: %v", err)
		}
	}

	items, total, err := service.Friends(t.Context(), 1, 1, 2)
	if err != nil {
		t.Fatalf("friends feed failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2 after dropping the unresolved author, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected a full page of 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Actor.Username != "ben" {
			t.Fatalf("unexpected actor %q in feed", item.Actor.Username)
		}
	}
}

func TestFeedService_Friends_Pagination(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seed := make([]rating.Rating, 0, 5)
	for i := 0; i < 5; i++ {
		seed = append(seed, rating.Rating{
			ID:             int64(i + 1),
			UserID:         2,
			MatchID:        int64(i + 1),
			Score:          60 + i,
			MinutesWatched: rating.WatchedFull,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
	}
	service, socialRepo := newFeedFixture(t, seed)

	if err := socialRepo.AddUserFollow(t.Context(), social.UserFollow{FollowerID: 1, FollowingID: 2, CreatedAt: base}); err != nil {
		t.Fatalf("seed follow failed: %v", err)
	}

	items, total, err := service.Friends(t.Context(), 1, 2, 2)
	if err != nil {
		t.Fatalf("friends feed failed: %v", err)
	}
	if total != 5 || len(items) != 2 {
		t.Fatalf("expected total 5 with 2 page items, got total=%d len=%d", total, len(items))
	}
	if items[0].Rating.MatchID != 3 || items[1].Rating.MatchID != 2 {
		t.Fatalf("unexpected page 2 contents: %d, %d", items[0].Rating.MatchID, items[1].Rating.MatchID)
	}

	items, total, err = service.Friends(t.Context(), 1, 9, 2)
	if err != nil {
		t.Fatalf("out-of-range page failed: %v", err)
	}
	if total != 5 || len(items) != 0 {
		t.Fatalf("expected empty out-of-range page, got %d items", len(items))
	}
}

func TestFeedService_Friends_NoFollowing(t *testing.T) {
	service, _ := newFeedFixture(t, nil)

	items, total, err := service.Friends(t.Context(), 1, 1, 20)
	if err != nil {
		t.Fatalf("friends feed failed: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected empty feed, got total=%d len=%d", total, len(items))
	}
}

func TestFeedService_FollowedTeams(t *testing.T) {
	service, socialRepo := newFeedFixture(t, nil)
	now := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	err := socialRepo.AddTeamFollow(t.Context(), social.TeamFollow{UserID: 1, TeamID: memory.TeamIDLiverpool, CreatedAt: now})
	if err != nil {
		t.Fatalf("seed team follow failed: %v", err)
	}

	items, err := service.FollowedTeams(t.Context(), 1)
	if err != nil {
		t.Fatalf("followed teams feed failed: %v", err)
	}

	// Liverpool appears in seed matches 4 and 6, on either side.
	if len(items) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(items))
	}
	if !items[0].Match.DateTime.After(items[1].Match.DateTime) {
		t.Fatalf("expected newest fixture first")
	}
	for _, item := range items {
		if !item.Match.Involves(memory.TeamIDLiverpool) {
			t.Fatalf("fixture %d does not involve the followed team", item.Match.ID)
		}
	}
}
