package match

import "context"

// Repository describes match catalog access from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]Match, error)
	ListByTeams(ctx context.Context, teamIDs []int64) ([]Match, error)
}
