package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/platform/cache"
	"github.com/ballboxd/ballboxd/internal/platform/logging"
)

const defaultWarmWorkers = 8

// WarmStatsResult summarizes one warm run over the match catalog.
type WarmStatsResult struct {
	MatchCount int
	Warmed     int
	Failed     int
	DurationMs int64
}

// StatsWarmService precomputes match statistics into the cache so the first
// page load after a deploy or TTL expiry does not pay the aggregation cost
// for every visible match.
type StatsWarmService struct {
	matchRepo  match.Repository
	ratingRepo rating.Repository
	statsCache *cache.Store
	logger     *logging.Logger
}

func NewStatsWarmService(
	matchRepo match.Repository,
	ratingRepo rating.Repository,
	statsCache *cache.Store,
	logger *logging.Logger,
) *StatsWarmService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StatsWarmService{
		matchRepo:  matchRepo,
		ratingRepo: ratingRepo,
		statsCache: statsCache,
		logger:     logger,
	}
}

// Warm recomputes statistics for every catalog match on a bounded worker
// pool. Individual match failures are counted and logged, never fatal.
func (s *StatsWarmService) Warm(ctx context.Context, workerCount int) (WarmStatsResult, error) {
	ctx, span := startSpan(ctx, "StatsWarmService.Warm")
	defer span.End()

	if workerCount <= 0 {
		workerCount = defaultWarmWorkers
	}

	matches, err := s.matchRepo.List(ctx, match.Filter{})
	if err != nil {
		return WarmStatsResult{}, fmt.Errorf("list matches: %w", err)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmStatsResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	start := time.Now()
	var warmed, failed atomic.Int32
	var workers sync.WaitGroup
	for _, m := range matches {
		m := m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			ratings, listErr := s.ratingRepo.ListByMatch(ctx, m.ID)
			if listErr != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "stats warm failed", "match_id", m.ID, "error", listErr)
				return
			}

			s.statsCache.Set(ctx, matchStatsCacheKey(m.ID), rating.MatchStats(ratings))
			warmed.Add(1)
		}); err != nil {
			workers.Done()
			return WarmStatsResult{}, fmt.Errorf("submit warm task: %w", err)
		}
	}
	workers.Wait()

	result := WarmStatsResult{
		MatchCount: len(matches),
		Warmed:     int(warmed.Load()),
		Failed:     int(failed.Load()),
		DurationMs: time.Since(start).Milliseconds(),
	}
	s.logger.InfoContext(ctx, "stats warm finished",
		"match_count", result.MatchCount,
		"warmed", result.Warmed,
		"failed", result.Failed,
		"duration_ms", result.DurationMs,
	)

	return result, nil
}
