package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type rateMatchRequest struct {
	Score                  int    `json:"score" validate:"gte=0,lte=100"`
	MinutesWatched         string `json:"minutes_watched" validate:"required"`
	Review                 string `json:"review"`
	Attended               bool   `json:"attended"`
	StadiumPhotoURL        string `json:"stadium_photo_url"`
	RepresentativePhotoURL string `json:"representative_photo_url"`
}

// updateRatingRequest is a partial patch; absent fields leave the stored
// rating untouched.
type updateRatingRequest struct {
	Score                  *int    `json:"score" validate:"omitempty,gte=0,lte=100"`
	MinutesWatched         *string `json:"minutes_watched"`
	Review                 *string `json:"review"`
	Attended               *bool   `json:"attended"`
	StadiumPhotoURL        *string `json:"stadium_photo_url"`
	RepresentativePhotoURL *string `json:"representative_photo_url"`
}

func (h *Handler) RateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RateMatch")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req rateMatchRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.ratingService.Rate(ctx, usecase.RateMatchInput{
		UserID:                 principal.UserID,
		Username:               principal.Username,
		MatchID:                matchID,
		Score:                  req.Score,
		MinutesWatched:         rating.MinutesWatched(req.MinutesWatched),
		Review:                 req.Review,
		Attended:               req.Attended,
		StadiumPhotoURL:        req.StadiumPhotoURL,
		RepresentativePhotoURL: req.RepresentativePhotoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "rate match failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, ratingToDTO(created))
}

func (h *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateRating")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateRatingRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateRatingInput{
		UserID:                 principal.UserID,
		MatchID:                matchID,
		Score:                  req.Score,
		Review:                 req.Review,
		Attended:               req.Attended,
		StadiumPhotoURL:        req.StadiumPhotoURL,
		RepresentativePhotoURL: req.RepresentativePhotoURL,
	}
	if req.MinutesWatched != nil {
		watched := rating.MinutesWatched(*req.MinutesWatched)
		input.MinutesWatched = &watched
	}

	updated, err := h.ratingService.Update(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update rating failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ratingToDTO(updated))
}
