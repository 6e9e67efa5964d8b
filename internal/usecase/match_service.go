package usecase

import (
	"context"
	"fmt"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/domain/search"
	"github.com/ballboxd/ballboxd/internal/domain/team"
	"github.com/ballboxd/ballboxd/internal/domain/tournament"
	"github.com/ballboxd/ballboxd/internal/platform/cache"
)

// MatchDetails is a catalog match enriched with its names, read-side
// statistics and, for authenticated callers, the viewer's own rating.
type MatchDetails struct {
	Match      match.Match
	HomeTeam   team.Team
	AwayTeam   team.Team
	Tournament tournament.Tournament
	Stats      rating.Stats
	MyRating   *rating.Rating
}

type ListMatchesInput struct {
	Filter match.Filter
	Search string
	// ViewerID is 0 for anonymous requests.
	ViewerID int64
}

type MatchService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	tournamentRepo tournament.Repository
	ratingRepo     rating.Repository
	statsCache     *cache.Store
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	tournamentRepo tournament.Repository,
	ratingRepo rating.Repository,
	statsCache *cache.Store,
) *MatchService {
	return &MatchService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		ratingRepo:     ratingRepo,
		statsCache:     statsCache,
	}
}

func matchStatsCacheKey(matchID int64) string {
	return fmt.Sprintf("match-stats:%d", matchID)
}

// List returns catalog matches narrowed by the filter and optional free-text
// search, newest kickoff first, each enriched with stats and the viewer's
// rating.
func (s *MatchService) List(ctx context.Context, input ListMatchesInput) ([]MatchDetails, error) {
	ctx, span := startSpan(ctx, "MatchService.List")
	defer span.End()

	items, err := s.matchRepo.List(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	details, err := s.enrich(ctx, items, input.ViewerID)
	if err != nil {
		return nil, err
	}

	if query := search.Parse(input.Search); !query.Empty() {
		filtered := details[:0]
		for _, d := range details {
			if matchMatchesQuery(d, query) {
				filtered = append(filtered, d)
			}
		}
		details = filtered
	}

	return details, nil
}

// Get returns one enriched match or ErrNotFound.
func (s *MatchService) Get(ctx context.Context, matchID, viewerID int64) (MatchDetails, error) {
	ctx, span := startSpan(ctx, "MatchService.Get")
	defer span.End()

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetails{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchDetails{}, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	details, err := s.enrich(ctx, []match.Match{item}, viewerID)
	if err != nil {
		return MatchDetails{}, err
	}

	return details[0], nil
}

// Stats computes the weighted aggregate for one match, serving warm values
// from the statistics cache.
func (s *MatchService) Stats(ctx context.Context, matchID int64) (rating.Stats, error) {
	ctx, span := startSpan(ctx, "MatchService.Stats")
	defer span.End()

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return rating.Stats{}, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return rating.Stats{}, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	value, err := s.statsCache.GetOrLoad(ctx, matchStatsCacheKey(matchID), func(ctx context.Context) (any, error) {
		ratings, loadErr := s.ratingRepo.ListByMatch(ctx, matchID)
		if loadErr != nil {
			return nil, fmt.Errorf("list match ratings: %w", loadErr)
		}
		return rating.MatchStats(ratings), nil
	})
	if err != nil {
		return rating.Stats{}, err
	}

	stats, ok := value.(rating.Stats)
	if !ok {
		return rating.Stats{}, fmt.Errorf("unexpected cached stats type %T", value)
	}

	return stats, nil
}

func (s *MatchService) enrich(ctx context.Context, items []match.Match, viewerID int64) ([]MatchDetails, error) {
	teamIDs := make([]int64, 0, len(items)*2)
	tournamentIDs := make([]int64, 0, len(items))
	for _, m := range items {
		teamIDs = append(teamIDs, m.HomeTeamID, m.AwayTeamID)
		tournamentIDs = append(tournamentIDs, m.TournamentID)
	}

	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("get teams: %w", err)
	}
	tournaments, err := s.tournamentRepo.GetByIDs(ctx, tournamentIDs)
	if err != nil {
		return nil, fmt.Errorf("get tournaments: %w", err)
	}

	var viewerRatings map[int64]rating.Rating
	if viewerID > 0 {
		owned, err := s.ratingRepo.ListByUser(ctx, viewerID)
		if err != nil {
			return nil, fmt.Errorf("list viewer ratings: %w", err)
		}
		viewerRatings = make(map[int64]rating.Rating, len(owned))
		for _, r := range owned {
			viewerRatings[r.MatchID] = r
		}
	}

	details := make([]MatchDetails, 0, len(items))
	for _, m := range items {
		stats, err := s.Stats(ctx, m.ID)
		if err != nil {
			return nil, err
		}

		d := MatchDetails{
			Match:      m,
			HomeTeam:   teams[m.HomeTeamID],
			AwayTeam:   teams[m.AwayTeamID],
			Tournament: tournaments[m.TournamentID],
			Stats:      stats,
		}
		if viewerRatings != nil {
			if mine, ok := viewerRatings[m.ID]; ok {
				copied := mine
				d.MyRating = &copied
			}
		}
		details = append(details, d)
	}

	return details, nil
}

// matchMatchesQuery applies free-text search to an enriched match. A plain
// token list lets each token hit either team name independently; a versus
// query pins each token group to one side, checked in both orientations.
func matchMatchesQuery(d MatchDetails, query search.Query) bool {
	home := search.Normalize(d.HomeTeam.Name)
	away := search.Normalize(d.AwayTeam.Name)

	if query.Versus() {
		return (search.MatchesAll(home, query.Home) && search.MatchesAll(away, query.Away)) ||
			(search.MatchesAll(home, query.Away) && search.MatchesAll(away, query.Home))
	}

	for _, token := range query.Tokens {
		if !search.MatchesAll(home, []string{token}) && !search.MatchesAll(away, []string{token}) {
			return false
		}
	}

	return len(query.Tokens) > 0
}
