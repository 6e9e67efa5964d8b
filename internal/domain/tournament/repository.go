package tournament

import "context"

// Repository describes tournament catalog access from use cases.
type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	GetByID(ctx context.Context, id int64) (Tournament, bool, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]Tournament, error)
}
