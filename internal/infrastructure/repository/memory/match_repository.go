package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ballboxd/ballboxd/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[int64]match.Match
}

func NewMatchRepository(seed []match.Match) *MatchRepository {
	matches := make(map[int64]match.Match, len(seed))
	for _, item := range seed {
		matches[item.ID] = item
	}

	return &MatchRepository{matches: matches}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.Matches(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.After(out[j].DateTime) })

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[id]
	return item, ok, nil
}

func (r *MatchRepository) GetByIDs(_ context.Context, ids []int64) (map[int64]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]match.Match, len(ids))
	for _, id := range ids {
		if item, ok := r.matches[id]; ok {
			out[id] = item
		}
	}

	return out, nil
}

func (r *MatchRepository) ListByTeams(_ context.Context, teamIDs []int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int64]bool, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = true
	}

	out := make([]match.Match, 0)
	for _, item := range r.matches {
		if wanted[item.HomeTeamID] || wanted[item.AwayTeamID] {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.After(out[j].DateTime) })

	return out, nil
}
