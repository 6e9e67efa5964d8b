package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/search"
	"github.com/ballboxd/ballboxd/internal/domain/team"
	"github.com/ballboxd/ballboxd/internal/domain/tournament"
)

type SearchInput struct {
	Query string
	// Types limits which categories run; empty means all of teams, leagues
	// and matches.
	Types    []string
	LeagueID int64
	DateFrom time.Time
	DateTo   time.Time
	Page     int
	PageSize int
}

// SearchResult holds per-category pages plus the combined pre-paging total
// across the requested categories.
type SearchResult struct {
	Teams   []team.Team
	Leagues []tournament.Tournament
	Matches []MatchSummary
	Total   int
}

type SearchService struct {
	teamRepo       team.Repository
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
}

func NewSearchService(teamRepo team.Repository, tournamentRepo tournament.Repository, matchRepo match.Repository) *SearchService {
	return &SearchService{
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
	}
}

// Search runs the free-text query across the requested categories
// concurrently. Teams and leagues sort alphabetically, matches newest first;
// each category is paginated independently with the shared page/page_size.
// A query that normalizes to nothing returns an empty result without error.
func (s *SearchService) Search(ctx context.Context, input SearchInput) (SearchResult, error) {
	ctx, span := startSpan(ctx, "SearchService.Search")
	defer span.End()

	query := search.Parse(input.Query)
	if query.Empty() {
		return SearchResult{
			Teams:   []team.Team{},
			Leagues: []tournament.Tournament{},
			Matches: []MatchSummary{},
		}, nil
	}

	page, pageSize := normalizePage(input.Page, input.PageSize)
	wantTeams, wantLeagues, wantMatches := requestedCategories(input.Types)

	var (
		teams      []team.Team
		teamsErr   error
		leagues    []tournament.Tournament
		leaguesErr error
		matches    []MatchSummary
		matchesErr error
	)

	var wg conc.WaitGroup
	if wantTeams {
		wg.Go(func() {
			teams, teamsErr = s.searchTeams(ctx, query, input.LeagueID)
		})
	}
	if wantLeagues {
		wg.Go(func() {
			leagues, leaguesErr = s.searchLeagues(ctx, query)
		})
	}
	if wantMatches {
		wg.Go(func() {
			matches, matchesErr = s.searchMatches(ctx, query, input.DateFrom, input.DateTo)
		})
	}
	wg.Wait()

	for _, err := range []error{teamsErr, leaguesErr, matchesErr} {
		if err != nil {
			return SearchResult{}, err
		}
	}

	result := SearchResult{
		Total:   len(teams) + len(leagues) + len(matches),
		Teams:   []team.Team{},
		Leagues: []tournament.Tournament{},
		Matches: []MatchSummary{},
	}
	if items := paginate(teams, page, pageSize); items != nil {
		result.Teams = items
	}
	if items := paginate(leagues, page, pageSize); items != nil {
		result.Leagues = items
	}
	if items := paginate(matches, page, pageSize); items != nil {
		result.Matches = items
	}

	return result, nil
}

// searchTeams returns teams whose normalized name contains every token,
// alphabetically. A versus query degrades to its combined token list. A
// league filter restricts to teams that have played in that tournament.
func (s *SearchService) searchTeams(ctx context.Context, query search.Query, leagueID int64) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	var inLeague map[int64]bool
	if leagueID > 0 {
		matches, err := s.matchRepo.List(ctx, match.Filter{TournamentID: leagueID})
		if err != nil {
			return nil, fmt.Errorf("list tournament matches: %w", err)
		}
		inLeague = make(map[int64]bool, len(matches)*2)
		for _, m := range matches {
			inLeague[m.HomeTeamID] = true
			inLeague[m.AwayTeamID] = true
		}
	}

	tokens := flatTokens(query)
	results := make([]team.Team, 0)
	for _, t := range items {
		if inLeague != nil && !inLeague[t.ID] {
			continue
		}
		if search.MatchesAll(search.Normalize(t.Name), tokens) {
			results = append(results, t)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return strings.ToLower(results[i].Name) < strings.ToLower(results[j].Name)
	})

	return results, nil
}

// searchLeagues matches tokens against the normalized "name country"
// concatenation, alphabetically.
func (s *SearchService) searchLeagues(ctx context.Context, query search.Query) ([]tournament.Tournament, error) {
	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	tokens := flatTokens(query)
	results := make([]tournament.Tournament, 0)
	for _, t := range items {
		haystack := search.Normalize(t.Name + " " + t.Country)
		if search.MatchesAll(haystack, tokens) {
			results = append(results, t)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return strings.ToLower(results[i].Name) < strings.ToLower(results[j].Name)
	})

	return results, nil
}

func (s *SearchService) searchMatches(ctx context.Context, query search.Query, from, to time.Time) ([]MatchSummary, error) {
	items, err := s.matchRepo.List(ctx, match.Filter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

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

	results := make([]MatchSummary, 0)
	for _, m := range items {
		summary := MatchSummary{
			Match:      m,
			HomeTeam:   teams[m.HomeTeamID],
			AwayTeam:   teams[m.AwayTeamID],
			Tournament: tournaments[m.TournamentID],
		}
		if matchMatchesQuery(MatchDetails{
			Match:    m,
			HomeTeam: summary.HomeTeam,
			AwayTeam: summary.AwayTeam,
		}, query) {
			results = append(results, summary)
		}
	}

	// Repo order is already newest first; keep it explicit for the postgres
	// path too.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Match.DateTime.After(results[j].Match.DateTime)
	})

	return results, nil
}

func requestedCategories(types []string) (teams, leagues, matches bool) {
	if len(types) == 0 {
		return true, true, true
	}
	for _, t := range types {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "teams", "team":
			teams = true
		case "leagues", "league", "tournaments", "tournament":
			leagues = true
		case "matches", "match":
			matches = true
		}
	}

	return teams, leagues, matches
}

// flatTokens flattens a versus query back into plain tokens for the
// categories where the home/away split has no meaning.
func flatTokens(query search.Query) []string {
	if !query.Versus() {
		return query.Tokens
	}

	tokens := make([]string, 0, len(query.Home)+len(query.Away))
	tokens = append(tokens, query.Home...)
	tokens = append(tokens, query.Away...)

	return tokens
}
