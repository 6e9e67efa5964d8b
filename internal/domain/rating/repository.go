package rating

import "context"

// Repository describes rating persistence needs from use cases. Update
// replaces the stored row for the rating's id; UpdateAll applies every given
// rating or none (single-writer semantics are provided by the caller's
// per-user lock).
type Repository interface {
	Create(ctx context.Context, item Rating) (Rating, error)
	Update(ctx context.Context, item Rating) error
	UpdateAll(ctx context.Context, items []Rating) error
	GetByUserAndMatch(ctx context.Context, userID, matchID int64) (Rating, bool, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Rating, error)
	ListByUser(ctx context.Context, userID int64) ([]Rating, error)
	ListByUsers(ctx context.Context, userIDs []int64) ([]Rating, error)
	ListFeaturedByUser(ctx context.Context, userID int64) ([]Rating, error)
}
