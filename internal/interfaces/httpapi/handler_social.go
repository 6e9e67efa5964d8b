package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ballboxd/ballboxd/internal/usecase"
)

func (h *Handler) FollowUser(w http.ResponseWriter, r *http.Request) {
	h.toggleUserFollow(w, r, "httpapi.Handler.FollowUser", h.socialService.FollowUser)
}

func (h *Handler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	h.toggleUserFollow(w, r, "httpapi.Handler.UnfollowUser", h.socialService.UnfollowUser)
}

func (h *Handler) FollowTeam(w http.ResponseWriter, r *http.Request) {
	h.toggleTeamFollow(w, r, "httpapi.Handler.FollowTeam", h.socialService.FollowTeam)
}

func (h *Handler) UnfollowTeam(w http.ResponseWriter, r *http.Request) {
	h.toggleTeamFollow(w, r, "httpapi.Handler.UnfollowTeam", h.socialService.UnfollowTeam)
}

func (h *Handler) toggleUserFollow(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	op func(ctx context.Context, followerID int64, targetUsername string) (usecase.UserFollowState, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	targetUsername := strings.TrimSpace(r.PathValue("username"))
	state, err := op(ctx, principal.UserID, targetUsername)
	if err != nil {
		h.logger.WarnContext(ctx, "user follow toggle failed", "username", targetUsername, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userFollowStateDTO{
		User:      userToDTO(state.Target),
		Following: state.Following,
		Counts:    followCountsToDTO(state.Counts),
	})
}

func (h *Handler) toggleTeamFollow(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	op func(ctx context.Context, userID, teamID int64) (usecase.TeamFollowState, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := op(ctx, principal.UserID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team follow toggle failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamFollowStateDTO{
		Team:      teamToDTO(state.Team),
		Following: state.Following,
		Followers: state.Followers,
	})
}
