package usecase

import (
	"testing"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
	"github.com/ballboxd/ballboxd/internal/platform/cache"
	"github.com/ballboxd/ballboxd/internal/platform/logging"
)

func TestStatsWarmService_Warm(t *testing.T) {
	statsCache := cache.NewStore(time.Minute)
	service := NewStatsWarmService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewRatingRepository([]rating.Rating{
			{ID: 1, UserID: 1, MatchID: 1, Score: 90, MinutesWatched: rating.WatchedFull, CreatedAt: time.Now()},
		}),
		statsCache,
		logging.NewNop(),
	)

	result, err := service.Warm(t.Context(), 4)
	if err != nil {
		t.Fatalf("warm failed: %v", err)
	}
	if result.MatchCount != 8 || result.Warmed != 8 || result.Failed != 0 {
		t.Fatalf("unexpected warm result: %+v", result)
	}

	value, ok := statsCache.Get(t.Context(), matchStatsCacheKey(1))
	if !ok {
		t.Fatalf("expected warmed stats for match 1")
	}
	stats, ok := value.(rating.Stats)
	if !ok || stats.RatingCount != 1 || stats.AvgScore != 90 {
		t.Fatalf("unexpected warmed stats: %+v", value)
	}
}

func TestStatsWarmService_Warm_DefaultsWorkerCount(t *testing.T) {
	service := NewStatsWarmService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewRatingRepository(nil),
		cache.NewStore(time.Minute),
		logging.NewNop(),
	)

	result, err := service.Warm(t.Context(), 0)
	if err != nil {
		t.Fatalf("warm failed: %v", err)
	}
	if result.Warmed != 8 {
		t.Fatalf("expected all matches warmed, got %+v", result)
	}
}
