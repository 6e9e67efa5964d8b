package httpapi

import (
	"fmt"
	"net/http"

	"github.com/ballboxd/ballboxd/internal/usecase"
)

type feedItemDTO struct {
	Actor   userDTO         `json:"actor"`
	Rating  ratingDTO       `json:"rating"`
	Snippet string          `json:"snippet"`
	Match   matchSummaryDTO `json:"match"`
}

type friendsFeedResponse struct {
	Count    int           `json:"count"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Results  []feedItemDTO `json:"results"`
}

type teamFeedResponse struct {
	Count   int               `json:"count"`
	Results []matchSummaryDTO `json:"results"`
}

func (h *Handler) FriendsFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FriendsFeed")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
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

	items, total, err := h.feedService.Friends(ctx, principal.UserID, page, pageSize)
	if err != nil {
		h.logger.WarnContext(ctx, "friends feed failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	results := make([]feedItemDTO, 0, len(items))
	for _, item := range items {
		results = append(results, feedItemDTO{
			Actor:   userToDTO(item.Actor),
			Rating:  ratingToDTO(item.Rating),
			Snippet: item.Snippet,
			Match: matchSummaryDTO{
				ID:         item.Match.ID,
				Tournament: tournamentToDTO(item.Tournament),
				HomeTeam:   teamToDTO(item.HomeTeam),
				AwayTeam:   teamToDTO(item.AwayTeam),
				DateTime:   item.Match.DateTime,
				HomeScore:  item.Match.HomeScore,
				AwayScore:  item.Match.AwayScore,
			},
		})
	}

	writeSuccess(ctx, w, http.StatusOK, friendsFeedResponse{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	})
}

func (h *Handler) FollowedTeamsFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FollowedTeamsFeed")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.feedService.FollowedTeams(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "team feed failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	results := make([]matchSummaryDTO, 0, len(items))
	for _, item := range items {
		results = append(results, matchSummaryToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, teamFeedResponse{
		Count:   len(results),
		Results: results,
	})
}
