package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ballboxd/ballboxd/internal/platform/logging"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type Handler struct {
	authService     *usecase.AuthService
	matchService    *usecase.MatchService
	ratingService   *usecase.RatingService
	memoriesService *usecase.MemoriesService
	profileService  *usecase.ProfileService
	socialService   *usecase.SocialService
	feedService     *usecase.FeedService
	searchService   *usecase.SearchService
	statsWarmer     *usecase.StatsWarmService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	matchService *usecase.MatchService,
	ratingService *usecase.RatingService,
	memoriesService *usecase.MemoriesService,
	profileService *usecase.ProfileService,
	socialService *usecase.SocialService,
	feedService *usecase.FeedService,
	searchService *usecase.SearchService,
	statsWarmer *usecase.StatsWarmService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:     authService,
		matchService:    matchService,
		ratingService:   ratingService,
		memoriesService: memoriesService,
		profileService:  profileService,
		socialService:   socialService,
		feedService:     feedService,
		searchService:   searchService,
		statsWarmer:     statsWarmer,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// pathID parses a positive integer path segment.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func queryPage(r *http.Request) (page, pageSize int, err error) {
	p, err := queryInt64(r, "page")
	if err != nil {
		return 0, 0, err
	}
	size, err := queryInt64(r, "page_size")
	if err != nil {
		return 0, 0, err
	}
	return int(p), int(size), nil
}

// queryDate accepts either a calendar date or an RFC 3339 instant. Date-only
// values snap to the start of the day in UTC; endOfDay extends them to the
// last instant of that day so inclusive upper bounds behave as expected.
func queryDate(r *http.Request, name string, endOfDay bool) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, nil
	}
	if day, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
		if endOfDay {
			return day.Add(24*time.Hour - time.Nanosecond), nil
		}
		return day, nil
	}
	if instant, err := time.Parse(time.RFC3339, raw); err == nil {
		return instant, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD or RFC 3339", usecase.ErrInvalidInput, name)
}
