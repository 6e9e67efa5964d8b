package usecase

import (
	"testing"
	"time"

	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
)

func newSearchService() *SearchService {
	return NewSearchService(
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewTournamentRepository(memory.SeedTournaments()),
		memory.NewMatchRepository(memory.SeedMatches()),
	)
}

func TestSearchService_AccentAndCaseInsensitive(t *testing.T) {
	service := newSearchService()

	for _, q := range []string{"Atlético", "atletico", "ATLETICO"} {
		result, err := service.Search(t.Context(), SearchInput{Query: q})
		if err != nil {
			t.Fatalf("search %q failed: %v", q, err)
		}
		if len(result.Teams) != 1 || result.Teams[0].ID != memory.TeamIDAtletico {
			t.Fatalf("search %q: expected exactly Atlético Madrid, got %+v", q, result.Teams)
		}
	}
}

func TestSearchService_VersusQuery(t *testing.T) {
	service := newSearchService()

	for _, q := range []string{"real madrid vs barcelona", "barcelona v real madrid", "barcelona - real madrid"} {
		result, err := service.Search(t.Context(), SearchInput{Query: q, Types: []string{"matches"}})
		if err != nil {
			t.Fatalf("search %q failed: %v", q, err)
		}
		if len(result.Matches) != 1 || result.Matches[0].Match.ID != 1 {
			t.Fatalf("search %q: expected only the clasico, got %d matches", q, len(result.Matches))
		}
	}
}

func TestSearchService_PlainTokensMatchEitherSide(t *testing.T) {
	service := newSearchService()

	result, err := service.Search(t.Context(), SearchInput{Query: "liverpool", Types: []string{"matches"}})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Matches) != 2 {
		t.Fatalf("expected liverpool home and away fixtures, got %d", len(result.Matches))
	}
}

func TestSearchService_Leagues(t *testing.T) {
	service := newSearchService()

	// "england" only appears in the league's country field.
	result, err := service.Search(t.Context(), SearchInput{Query: "england", Types: []string{"leagues"}})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Leagues) != 1 || result.Leagues[0].ID != memory.TournamentIDPremierLeague {
		t.Fatalf("expected premier league, got %+v", result.Leagues)
	}
}

func TestSearchService_LeagueFilterRestrictsTeams(t *testing.T) {
	service := newSearchService()

	// Two Madrid clubs exist, both in La Liga; none in the Premier League.
	result, err := service.Search(t.Context(), SearchInput{Query: "madrid", LeagueID: memory.TournamentIDPremierLeague})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Teams) != 0 {
		t.Fatalf("expected no madrid teams in the premier league, got %+v", result.Teams)
	}

	result, err = service.Search(t.Context(), SearchInput{Query: "madrid", LeagueID: memory.TournamentIDLaLiga})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Teams) != 2 {
		t.Fatalf("expected both madrid clubs, got %+v", result.Teams)
	}
	// Alphabetical within the category.
	if result.Teams[0].ID != memory.TeamIDAtletico {
		t.Fatalf("expected Atlético first alphabetically, got %s", result.Teams[0].Name)
	}
}

func TestSearchService_DateBounds(t *testing.T) {
	service := newSearchService()

	result, err := service.Search(t.Context(), SearchInput{
		Query:    "liverpool",
		Types:    []string{"matches"},
		DateFrom: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Matches) != 1 || result.Matches[0].Match.ID != 6 {
		t.Fatalf("expected only the later liverpool fixture, got %d matches", len(result.Matches))
	}
}

func TestSearchService_TotalAndPagination(t *testing.T) {
	service := newSearchService()

	full, err := service.Search(t.Context(), SearchInput{Query: "madrid"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	// 2 teams + 4 matches involving a Madrid side.
	if full.Total != 6 {
		t.Fatalf("expected combined total 6, got %d", full.Total)
	}

	paged, err := service.Search(t.Context(), SearchInput{Query: "madrid", Page: 1, PageSize: 1})
	if err != nil {
		t.Fatalf("paged search failed: %v", err)
	}
	if paged.Total != 6 {
		t.Fatalf("total must count before paging, got %d", paged.Total)
	}
	if len(paged.Teams) != 1 || len(paged.Matches) != 1 {
		t.Fatalf("expected one item per category page, got teams=%d matches=%d", len(paged.Teams), len(paged.Matches))
	}
}

func TestSearchService_EmptyQuery(t *testing.T) {
	service := newSearchService()

	for _, q := range []string{"", "   ", "!!!", "- -"} {
		result, err := service.Search(t.Context(), SearchInput{Query: q})
		if err != nil {
			t.Fatalf("search %q failed: %v", q, err)
		}
		if result.Total != 0 || len(result.Teams) != 0 || len(result.Leagues) != 0 || len(result.Matches) != 0 {
			t.Fatalf("search %q: expected empty result, got %+v", q, result)
		}
	}
}
