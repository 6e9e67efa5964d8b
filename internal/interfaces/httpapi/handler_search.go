package httpapi

import (
	"net/http"
	"strings"

	"github.com/ballboxd/ballboxd/internal/usecase"
)

type searchResultsDTO struct {
	Teams   []teamDTO         `json:"teams"`
	Leagues []tournamentDTO   `json:"leagues"`
	Matches []matchSummaryDTO `json:"matches"`
}

type searchResponse struct {
	Q        string           `json:"q"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int              `json:"total"`
	Results  searchResultsDTO `json:"results"`
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Search")
	defer span.End()

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	dateFrom, err := queryDate(r, "date_from", false)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	dateTo, err := queryDate(r, "date_to", true)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	page, pageSize, err := queryPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultMatchPageSize
	}

	var types []string
	if raw := strings.TrimSpace(r.URL.Query().Get("types")); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	result, err := h.searchService.Search(ctx, usecase.SearchInput{
		Query:    q,
		Types:    types,
		LeagueID: leagueID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "search failed", "q", q, "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]teamDTO, 0, len(result.Teams))
	for _, t := range result.Teams {
		teams = append(teams, teamToDTO(t))
	}
	leagues := make([]tournamentDTO, 0, len(result.Leagues))
	for _, l := range result.Leagues {
		leagues = append(leagues, tournamentToDTO(l))
	}
	matches := make([]matchSummaryDTO, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, matchSummaryToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, searchResponse{
		Q:        q,
		Page:     page,
		PageSize: pageSize,
		Total:    result.Total,
		Results: searchResultsDTO{
			Teams:   teams,
			Leagues: leagues,
			Matches: matches,
		},
	})
}
