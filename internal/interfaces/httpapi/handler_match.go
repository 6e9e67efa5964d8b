package httpapi

import (
	"net/http"
	"strings"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type matchListResponse struct {
	Count    int        `json:"count"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Results  []matchDTO `json:"results"`
}

const defaultMatchPageSize = 20

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	filter, err := matchFilterFromQuery(r)
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

	var viewerID int64
	if principal, ok := principalFromContext(ctx); ok {
		viewerID = principal.UserID
	}

	items, err := h.matchService.List(ctx, usecase.ListMatchesInput{
		Filter:   filter,
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		ViewerID: viewerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	total := len(items)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	results := make([]matchDTO, 0, end-start)
	for _, item := range items[start:end] {
		results = append(results, matchDetailsToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, matchListResponse{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var viewerID int64
	if principal, ok := principalFromContext(ctx); ok {
		viewerID = principal.UserID
	}

	item, err := h.matchService.Get(ctx, matchID, viewerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsToDTO(item))
}

func matchFilterFromQuery(r *http.Request) (match.Filter, error) {
	tournamentID, err := queryInt64(r, "tournament")
	if err != nil {
		return match.Filter{}, err
	}
	day, err := queryDate(r, "date", false)
	if err != nil {
		return match.Filter{}, err
	}
	from, err := queryDate(r, "from", false)
	if err != nil {
		return match.Filter{}, err
	}
	to, err := queryDate(r, "to", true)
	if err != nil {
		return match.Filter{}, err
	}

	return match.Filter{
		TournamentID: tournamentID,
		Day:          day,
		From:         from,
		To:           to,
	}, nil
}
