package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
	"github.com/ballboxd/ballboxd/internal/platform/cache"
)

func newMatchFixture(seedRatings []rating.Rating) (*MatchService, *cache.Store) {
	statsCache := cache.NewStore(time.Minute)
	service := NewMatchService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewTournamentRepository(memory.SeedTournaments()),
		memory.NewRatingRepository(seedRatings),
		statsCache,
	)

	return service, statsCache
}

func TestMatchService_Stats_WeightedAggregate(t *testing.T) {
	service, _ := newMatchFixture([]rating.Rating{
		{ID: 1, UserID: 1, MatchID: 1, Score: 85, MinutesWatched: rating.WatchedFull, CreatedAt: time.Now()},
		{ID: 2, UserID: 2, MatchID: 1, Score: 78, MinutesWatched: rating.WatchedAlmostAll, CreatedAt: time.Now()},
	})

	stats, err := service.Stats(t.Context(), 1)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.AvgScore != 82 {
		t.Fatalf("expected weighted avg 82, got %v", stats.AvgScore)
	}
	if stats.RatingCount != 2 || stats.FullWatchedPct != 50 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestMatchService_Stats_UnratedMatchIsZero(t *testing.T) {
	service, _ := newMatchFixture(nil)

	stats, err := service.Stats(t.Context(), 2)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats != (rating.Stats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestMatchService_Stats_UnknownMatch(t *testing.T) {
	service, _ := newMatchFixture(nil)

	if _, err := service.Stats(t.Context(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMatchService_Stats_ServesCachedValue(t *testing.T) {
	ratingRepo := memory.NewRatingRepository([]rating.Rating{
		{ID: 1, UserID: 1, MatchID: 1, Score: 80, MinutesWatched: rating.WatchedFull, CreatedAt: time.Now()},
	})
	statsCache := cache.NewStore(time.Minute)
	service := NewMatchService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewTournamentRepository(memory.SeedTournaments()),
		ratingRepo,
		statsCache,
	)

	first, err := service.Stats(t.Context(), 1)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	// A write that bypasses the invalidation path is invisible until the
	// entry is dropped.
	if _, err := ratingRepo.Create(t.Context(), rating.Rating{
		UserID: 2, MatchID: 1, Score: 20, MinutesWatched: rating.WatchedFull, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("seed rating failed: %v", err)
	}

	cached, err := service.Stats(t.Context(), 1)
	if err != nil {
		t.Fatalf("cached stats failed: %v", err)
	}
	if cached != first {
		t.Fatalf("expected cached stats %+v, got %+v", first, cached)
	}

	statsCache.Delete(t.Context(), matchStatsCacheKey(1))
	fresh, err := service.Stats(t.Context(), 1)
	if err != nil {
		t.Fatalf("fresh stats failed: %v", err)
	}
	if fresh.RatingCount != 2 {
		t.Fatalf("expected recomputed stats after invalidation, got %+v", fresh)
	}
}

func TestMatchService_List_FiltersAndSearch(t *testing.T) {
	service, _ := newMatchFixture(nil)

	laLiga, err := service.List(t.Context(), ListMatchesInput{
		Filter: match.Filter{TournamentID: memory.TournamentIDLaLiga},
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(laLiga) != 4 {
		t.Fatalf("expected 4 la liga matches, got %d", len(laLiga))
	}
	for _, d := range laLiga {
		if d.Tournament.ID != memory.TournamentIDLaLiga {
			t.Fatalf("unexpected tournament in filtered list: %+v", d.Tournament)
		}
	}

	day, err := service.List(t.Context(), ListMatchesInput{
		Filter: match.Filter{Day: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("day list failed: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("expected 2 matches on march 7th, got %d", len(day))
	}

	searched, err := service.List(t.Context(), ListMatchesInput{Search: "sevilla"})
	if err != nil {
		t.Fatalf("searched list failed: %v", err)
	}
	if len(searched) != 2 {
		t.Fatalf("expected 2 sevilla matches, got %d", len(searched))
	}
}

func TestMatchService_List_ViewerRating(t *testing.T) {
	service, _ := newMatchFixture([]rating.Rating{
		{ID: 1, UserID: 7, MatchID: 5, Score: 64, MinutesWatched: rating.WatchedFull, CreatedAt: time.Now()},
	})

	details, err := service.List(t.Context(), ListMatchesInput{ViewerID: 7})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, d := range details {
		if d.Match.ID == 5 {
			if d.MyRating == nil || d.MyRating.Score != 64 {
				t.Fatalf("expected viewer rating on match 5, got %+v", d.MyRating)
			}
		} else if d.MyRating != nil {
			t.Fatalf("unexpected viewer rating on match %d", d.Match.ID)
		}
	}

	anonymous, err := service.List(t.Context(), ListMatchesInput{})
	if err != nil {
		t.Fatalf("anonymous list failed: %v", err)
	}
	for _, d := range anonymous {
		if d.MyRating != nil {
			t.Fatalf("anonymous listing must not carry my_rating")
		}
	}
}

func TestMatchService_Get(t *testing.T) {
	service, _ := newMatchFixture(nil)

	details, err := service.Get(t.Context(), 1, 0)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if details.HomeTeam.Name != "Real Madrid" || details.AwayTeam.Name != "FC Barcelona" {
		t.Fatalf("unexpected enrichment: %+v", details)
	}

	if _, err := service.Get(t.Context(), 999, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
