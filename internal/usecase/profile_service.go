package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/domain/social"
	"github.com/ballboxd/ballboxd/internal/domain/user"
)

// Profile is the public view of an account: the user, unweighted rating
// statistics and follow counts.
type Profile struct {
	User    user.User
	Stats   rating.Stats
	Counts  social.FollowCounts
	Ratings []rating.Rating
}

type ProfileService struct {
	userRepo   user.Repository
	ratingRepo rating.Repository
	socialRepo social.Repository
}

func NewProfileService(userRepo user.Repository, ratingRepo rating.Repository, socialRepo social.Repository) *ProfileService {
	return &ProfileService{
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
		socialRepo: socialRepo,
	}
}

// Get returns the profile for a username. A non-zero since bounds the
// statistics population to ratings created at or after that instant; the
// rating list itself is not filtered.
func (s *ProfileService) Get(ctx context.Context, username string, since time.Time) (Profile, error) {
	ctx, span := startSpan(ctx, "ProfileService.Get")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return Profile{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return Profile{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return Profile{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}

	ratings, err := s.ratingRepo.ListByUser(ctx, item.ID)
	if err != nil {
		return Profile{}, fmt.Errorf("list user ratings: %w", err)
	}

	population := ratings
	if !since.IsZero() {
		population = make([]rating.Rating, 0, len(ratings))
		for _, r := range ratings {
			if !r.CreatedAt.Before(since) {
				population = append(population, r)
			}
		}
	}

	counts, err := s.socialRepo.CountsForUser(ctx, item.ID)
	if err != nil {
		return Profile{}, fmt.Errorf("count follows: %w", err)
	}

	return Profile{
		User:    item,
		Stats:   rating.ProfileStats(population),
		Counts:  counts,
		Ratings: ratings,
	}, nil
}
