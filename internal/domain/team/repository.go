package team

import "context"

// Repository describes team catalog access from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]Team, error)
}
