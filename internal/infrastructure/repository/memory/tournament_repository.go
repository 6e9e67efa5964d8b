package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ballboxd/ballboxd/internal/domain/tournament"
)

type TournamentRepository struct {
	mu          sync.RWMutex
	tournaments map[int64]tournament.Tournament
}

func NewTournamentRepository(seed []tournament.Tournament) *TournamentRepository {
	tournaments := make(map[int64]tournament.Tournament, len(seed))
	for _, item := range seed {
		tournaments[item.ID] = item
	}

	return &TournamentRepository{tournaments: tournaments}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.tournaments))
	for _, item := range r.tournaments {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, id int64) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.tournaments[id]
	return item, ok, nil
}

func (r *TournamentRepository) GetByIDs(_ context.Context, ids []int64) (map[int64]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]tournament.Tournament, len(ids))
	for _, id := range ids {
		if item, ok := r.tournaments[id]; ok {
			out[id] = item
		}
	}

	return out, nil
}
