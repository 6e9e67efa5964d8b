package httpapi

import (
	"net/http"
)

type warmStatsResponse struct {
	MatchCount int   `json:"match_count"`
	Warmed     int   `json:"warmed"`
	Failed     int   `json:"failed"`
	DurationMs int64 `json:"duration_ms"`
}

func (h *Handler) RunWarmStatsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmStatsJob")
	defer span.End()

	workers, err := queryInt64(r, "workers")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsWarmer.Warm(ctx, int(workers))
	if err != nil {
		h.logger.ErrorContext(ctx, "warm stats job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, warmStatsResponse{
		MatchCount: result.MatchCount,
		Warmed:     result.Warmed,
		Failed:     result.Failed,
		DurationMs: result.DurationMs,
	})
}
