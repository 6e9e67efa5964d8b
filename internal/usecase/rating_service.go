package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/platform/cache"
	"github.com/ballboxd/ballboxd/internal/platform/logging"
	"github.com/ballboxd/ballboxd/internal/platform/resilience"
)

// RatingActivity is the event shape published to the activity webhook when a
// rating is created.
type RatingActivity struct {
	RatingID  int64     `json:"rating_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	MatchID   int64     `json:"match_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityPublisher forwards rating activity to an external consumer.
// Delivery is best effort; failures never fail the originating request.
type ActivityPublisher interface {
	RatingCreated(ctx context.Context, event RatingActivity) error
}

type RateMatchInput struct {
	UserID                 int64
	Username               string
	MatchID                int64
	Score                  int
	MinutesWatched         rating.MinutesWatched
	Review                 string
	Attended               bool
	StadiumPhotoURL        string
	RepresentativePhotoURL string
}

// UpdateRatingInput carries a partial rating update. Nil fields are left
// untouched.
type UpdateRatingInput struct {
	UserID                 int64
	MatchID                int64
	Score                  *int
	MinutesWatched         *rating.MinutesWatched
	Review                 *string
	Attended               *bool
	StadiumPhotoURL        *string
	RepresentativePhotoURL *string
}

type RatingService struct {
	matchRepo  match.Repository
	ratingRepo rating.Repository
	statsCache *cache.Store
	userLocks  *resilience.KeyedMutex
	publisher  ActivityPublisher
	logger     *logging.Logger
	now        func() time.Time
}

func NewRatingService(
	matchRepo match.Repository,
	ratingRepo rating.Repository,
	statsCache *cache.Store,
	userLocks *resilience.KeyedMutex,
	publisher ActivityPublisher,
	logger *logging.Logger,
) *RatingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RatingService{
		matchRepo:  matchRepo,
		ratingRepo: ratingRepo,
		statsCache: statsCache,
		userLocks:  userLocks,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// Rate creates the caller's rating for a match. A second rating for the same
// match is rejected with a conflict; the duplicate check and the insert run
// under the caller's lock so concurrent submissions cannot both pass.
func (s *RatingService) Rate(ctx context.Context, input RateMatchInput) (rating.Rating, error) {
	ctx, span := startSpan(ctx, "RatingService.Rate")
	defer span.End()

	if _, exists, err := s.matchRepo.GetByID(ctx, input.MatchID); err != nil {
		return rating.Rating{}, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return rating.Rating{}, fmt.Errorf("%w: match %d", ErrNotFound, input.MatchID)
	}

	item := rating.Rating{
		UserID:                 input.UserID,
		MatchID:                input.MatchID,
		Score:                  input.Score,
		MinutesWatched:         input.MinutesWatched,
		Review:                 input.Review,
		Attended:               input.Attended,
		StadiumPhotoURL:        input.StadiumPhotoURL,
		RepresentativePhotoURL: input.RepresentativePhotoURL,
		CreatedAt:              s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return rating.Rating{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.userLocks.Lock(input.UserID)
	defer s.userLocks.Unlock(input.UserID)

	if _, exists, err := s.ratingRepo.GetByUserAndMatch(ctx, input.UserID, input.MatchID); err != nil {
		return rating.Rating{}, fmt.Errorf("check existing rating: %w", err)
	} else if exists {
		return rating.Rating{}, fmt.Errorf("%w: match %d is already rated", ErrConflict, input.MatchID)
	}

	created, err := s.ratingRepo.Create(ctx, item)
	if err != nil {
		return rating.Rating{}, fmt.Errorf("create rating: %w", err)
	}

	s.statsCache.Delete(ctx, matchStatsCacheKey(input.MatchID))
	s.publishCreated(ctx, created, input.Username)

	return created, nil
}

// Update patches the caller's existing rating for a match.
func (s *RatingService) Update(ctx context.Context, input UpdateRatingInput) (rating.Rating, error) {
	ctx, span := startSpan(ctx, "RatingService.Update")
	defer span.End()

	s.userLocks.Lock(input.UserID)
	defer s.userLocks.Unlock(input.UserID)

	item, exists, err := s.ratingRepo.GetByUserAndMatch(ctx, input.UserID, input.MatchID)
	if err != nil {
		return rating.Rating{}, fmt.Errorf("get rating: %w", err)
	}
	if !exists {
		return rating.Rating{}, fmt.Errorf("%w: match %d has no rating to update", ErrNotFound, input.MatchID)
	}

	if input.Score != nil {
		item.Score = *input.Score
	}
	if input.MinutesWatched != nil {
		item.MinutesWatched = *input.MinutesWatched
	}
	if input.Review != nil {
		item.Review = *input.Review
	}
	if input.Attended != nil {
		item.Attended = *input.Attended
	}
	if input.StadiumPhotoURL != nil {
		item.StadiumPhotoURL = *input.StadiumPhotoURL
	}
	if input.RepresentativePhotoURL != nil {
		item.RepresentativePhotoURL = *input.RepresentativePhotoURL
	}
	item.NormalizePrimaryImage()

	if err := item.Validate(); err != nil {
		return rating.Rating{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ratingRepo.Update(ctx, item); err != nil {
		return rating.Rating{}, fmt.Errorf("update rating: %w", err)
	}

	s.statsCache.Delete(ctx, matchStatsCacheKey(input.MatchID))

	return item, nil
}

func (s *RatingService) publishCreated(ctx context.Context, created rating.Rating, username string) {
	if s.publisher == nil {
		return
	}

	event := RatingActivity{
		RatingID:  created.ID,
		UserID:    created.UserID,
		Username:  username,
		MatchID:   created.MatchID,
		Score:     created.Score,
		CreatedAt: created.CreatedAt,
	}
	if err := s.publisher.RatingCreated(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "rating activity publish failed",
			"rating_id", created.ID,
			"match_id", created.MatchID,
			"error", err,
		)
	}
}
