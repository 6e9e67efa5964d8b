package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
)

type RatingRepository struct {
	mu      sync.RWMutex
	ratings map[int64]rating.Rating
	nextID  int64
}

func NewRatingRepository(seed []rating.Rating) *RatingRepository {
	ratings := make(map[int64]rating.Rating, len(seed))
	var maxID int64
	for _, item := range seed {
		ratings[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &RatingRepository{ratings: ratings, nextID: maxID}
}

func (r *RatingRepository) Create(_ context.Context, item rating.Rating) (rating.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.ratings[item.ID] = item

	return item, nil
}

func (r *RatingRepository) Update(_ context.Context, item rating.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ratings[item.ID] = item

	return nil
}

func (r *RatingRepository) UpdateAll(_ context.Context, items []rating.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.ratings[item.ID] = item
	}

	return nil
}

func (r *RatingRepository) GetByUserAndMatch(_ context.Context, userID, matchID int64) (rating.Rating, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.ratings {
		if item.UserID == userID && item.MatchID == matchID {
			return item, true, nil
		}
	}

	return rating.Rating{}, false, nil
}

func (r *RatingRepository) ListByMatch(_ context.Context, matchID int64) ([]rating.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rating.Rating, 0)
	for _, item := range r.ratings {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sortByCreatedDesc(out)

	return out, nil
}

func (r *RatingRepository) ListByUser(_ context.Context, userID int64) ([]rating.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rating.Rating, 0)
	for _, item := range r.ratings {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sortByCreatedDesc(out)

	return out, nil
}

func (r *RatingRepository) ListByUsers(_ context.Context, userIDs []int64) ([]rating.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}

	out := make([]rating.Rating, 0)
	for _, item := range r.ratings {
		if wanted[item.UserID] {
			out = append(out, item)
		}
	}
	sortByCreatedDesc(out)

	return out, nil
}

func (r *RatingRepository) ListFeaturedByUser(_ context.Context, userID int64) ([]rating.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rating.Rating, 0, rating.MaxFeatured)
	for _, item := range r.ratings {
		if item.UserID == userID && item.Featured() {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FeaturedOrder < out[j].FeaturedOrder })

	return out, nil
}

func sortByCreatedDesc(items []rating.Rating) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
