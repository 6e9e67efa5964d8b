package httpapi

import (
	"net/http"
	"strings"
)

type profileResponse struct {
	User    userDTO         `json:"user"`
	Stats   statsDTO        `json:"stats"`
	Counts  followCountsDTO `json:"counts"`
	Results []ratingDTO     `json:"results"`
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfile")
	defer span.End()

	username := strings.TrimSpace(r.PathValue("username"))
	since, err := queryDate(r, "since", false)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.profileService.Get(ctx, username, since)
	if err != nil {
		h.logger.WarnContext(ctx, "get profile failed", "username", username, "error", err)
		writeError(ctx, w, err)
		return
	}

	results := make([]ratingDTO, 0, len(profile.Ratings))
	for _, item := range profile.Ratings {
		results = append(results, ratingToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, profileResponse{
		User:    userToDTO(profile.User),
		Stats:   statsToDTO(profile.Stats),
		Counts:  followCountsToDTO(profile.Counts),
		Results: results,
	})
}
