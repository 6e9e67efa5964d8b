package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ballboxd/ballboxd/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[int64]team.Team
}

func NewTeamRepository(seed []team.Team) *TeamRepository {
	teams := make(map[int64]team.Team, len(seed))
	for _, item := range seed {
		teams[item.ID] = item
	}

	return &TeamRepository{teams: teams}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[id]
	return item, ok, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, ids []int64) (map[int64]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]team.Team, len(ids))
	for _, id := range ids {
		if item, ok := r.teams[id]; ok {
			out[id] = item
		}
	}

	return out, nil
}
