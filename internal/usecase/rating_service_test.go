package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
	"github.com/ballboxd/ballboxd/internal/platform/cache"
	"github.com/ballboxd/ballboxd/internal/platform/logging"
	"github.com/ballboxd/ballboxd/internal/platform/resilience"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []RatingActivity
	err    error
}

func (p *capturePublisher) RatingCreated(_ context.Context, event RatingActivity) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func newRatingService(publisher ActivityPublisher) (*RatingService, *memory.RatingRepository) {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	ratingRepo := memory.NewRatingRepository(nil)
	service := NewRatingService(
		matchRepo,
		ratingRepo,
		cache.NewStore(time.Minute),
		resilience.NewKeyedMutex(),
		publisher,
		logging.NewNop(),
	)

	return service, ratingRepo
}

func TestRatingService_Rate(t *testing.T) {
	publisher := &capturePublisher{}
	service, _ := newRatingService(publisher)

	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.Rate(t.Context(), RateMatchInput{
		UserID:         1,
		Username:       "ana",
		MatchID:        1,
		Score:          85,
		MinutesWatched: rating.WatchedFull,
		Review:         "what a clasico",
	})
	if err != nil {
		t.Fatalf("rate failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned rating id")
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("expected created at %v, got %v", now, created.CreatedAt)
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.events))
	}
	if publisher.events[0].Username != "ana" || publisher.events[0].MatchID != 1 {
		t.Fatalf("unexpected event payload: %+v", publisher.events[0])
	}
}

func TestRatingService_Rate_DuplicateConflicts(t *testing.T) {
	service, _ := newRatingService(nil)

	input := RateMatchInput{UserID: 1, MatchID: 2, Score: 70, MinutesWatched: rating.WatchedOneHalf}
	if _, err := service.Rate(t.Context(), input); err != nil {
		t.Fatalf("first rate failed: %v", err)
	}

	input.Score = 99
	_, err := service.Rate(t.Context(), input)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on duplicate rating, got %v", err)
	}
}

func TestRatingService_Rate_UnknownMatch(t *testing.T) {
	service, _ := newRatingService(nil)

	_, err := service.Rate(t.Context(), RateMatchInput{
		UserID: 1, MatchID: 999, Score: 50, MinutesWatched: rating.WatchedFull,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown match, got %v", err)
	}
}

func TestRatingService_Rate_InvalidScore(t *testing.T) {
	service, _ := newRatingService(nil)

	_, err := service.Rate(t.Context(), RateMatchInput{
		UserID: 1, MatchID: 1, Score: 101, MinutesWatched: rating.WatchedFull,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for score 101, got %v", err)
	}
}

func TestRatingService_Update(t *testing.T) {
	service, _ := newRatingService(nil)

	if _, err := service.Rate(t.Context(), RateMatchInput{
		UserID: 1, MatchID: 3, Score: 60, MinutesWatched: rating.WatchedAlmostAll, Review: "decent",
	}); err != nil {
		t.Fatalf("rate failed: %v", err)
	}

	score := 75
	review := "better on rewatch"
	updated, err := service.Update(t.Context(), UpdateRatingInput{
		UserID:  1,
		MatchID: 3,
		Score:   &score,
		Review:  &review,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Score != 75 || updated.Review != "better on rewatch" {
		t.Fatalf("unexpected updated rating: %+v", updated)
	}
	if updated.MinutesWatched != rating.WatchedAlmostAll {
		t.Fatalf("expected untouched minutes watched, got %s", updated.MinutesWatched)
	}
}

func TestRatingService_Update_NoExistingRating(t *testing.T) {
	service, _ := newRatingService(nil)

	score := 50
	_, err := service.Update(t.Context(), UpdateRatingInput{UserID: 1, MatchID: 4, Score: &score})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found when updating unrated match, got %v", err)
	}
}

func TestRatingService_PublishFailureDoesNotFailRate(t *testing.T) {
	publisher := &capturePublisher{err: errors.New("webhook down")}
	service, _ := newRatingService(publisher)

	if _, err := service.Rate(t.Context(), RateMatchInput{
		UserID: 1, MatchID: 5, Score: 80, MinutesWatched: rating.WatchedFull,
	}); err != nil {
		t.Fatalf("rate should succeed despite publish failure, got %v", err)
	}
}
