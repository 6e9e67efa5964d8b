package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type addMemoryRequest struct {
	MatchID        int64 `json:"match_id" validate:"required,gt=0"`
	ReplaceMatchID int64 `json:"replace_match_id" validate:"omitempty,gt=0"`
}

// patchMemoriesRequest covers both PATCH shapes: a reorder ({"order": [...]})
// or a metadata update keyed by match_id. String fields decode as raw JSON so
// an explicit null (clear) can be told apart from an absent field (keep).
type patchMemoriesRequest struct {
	Order                  []int64         `json:"order"`
	MatchID                int64           `json:"match_id"`
	FeaturedNote           json.RawMessage `json:"featured_note"`
	RepresentativePhotoURL json.RawMessage `json:"representative_photo_url"`
	FeaturedPrimaryImage   *string         `json:"featured_primary_image"`
}

func (h *Handler) ListMemories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMemories")
	defer span.End()

	username := strings.TrimSpace(r.PathValue("username"))
	owner, memories, err := h.memoriesService.List(ctx, username)
	if err != nil {
		h.logger.WarnContext(ctx, "list memories failed", "username", username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memoriesToPayload(owner, memories))
}

func (h *Handler) AddMemory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMemory")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	username := strings.TrimSpace(r.PathValue("username"))

	var req addMemoryRequest
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

	owner, memories, err := h.memoriesService.Add(ctx, principal, username, req.MatchID, req.ReplaceMatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "add memory failed", "username", username, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memoriesToPayload(owner, memories))
}

func (h *Handler) PatchMemories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchMemories")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	username := strings.TrimSpace(r.PathValue("username"))

	var req patchMemoriesRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if len(req.Order) > 0 {
		owner, memories, err := h.memoriesService.Reorder(ctx, principal, username, req.Order)
		if err != nil {
			h.logger.WarnContext(ctx, "reorder memories failed", "username", username, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, memoriesToPayload(owner, memories))
		return
	}

	if req.MatchID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: either order or match_id is required", usecase.ErrInvalidInput))
		return
	}

	input := usecase.UpdateMemoryMetaInput{MatchID: req.MatchID}
	note, err := clearableString(req.FeaturedNote, "featured_note")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	input.Note = note
	photoURL, err := clearableString(req.RepresentativePhotoURL, "representative_photo_url")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	input.RepresentativePhotoURL = photoURL
	if req.FeaturedPrimaryImage != nil {
		image := rating.PrimaryImage(*req.FeaturedPrimaryImage)
		input.PrimaryImage = &image
	}

	owner, memories, err := h.memoriesService.UpdateMeta(ctx, principal, username, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update memory meta failed", "username", username, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memoriesToPayload(owner, memories))
}

func (h *Handler) RemoveMemory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveMemory")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	username := strings.TrimSpace(r.PathValue("username"))

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.memoriesService.Remove(ctx, principal, username, matchID); err != nil {
		h.logger.WarnContext(ctx, "remove memory failed", "username", username, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clearableString maps an absent field to nil (keep current value) and an
// explicit JSON null to a pointer to "" (clear).
func clearableString(raw json.RawMessage, name string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	if string(raw) == "null" {
		empty := ""
		return &empty, nil
	}
	var value string
	if err := jsoniter.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %s must be a string or null", usecase.ErrInvalidInput, name)
	}
	return &value, nil
}
