package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ballboxd/ballboxd/internal/config"
	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/domain/social"
	"github.com/ballboxd/ballboxd/internal/domain/team"
	"github.com/ballboxd/ballboxd/internal/domain/tournament"
	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/infrastructure/authtoken"
	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/postgres"
	"github.com/ballboxd/ballboxd/internal/infrastructure/webhook"
	"github.com/ballboxd/ballboxd/internal/interfaces/httpapi"
	"github.com/ballboxd/ballboxd/internal/platform/cache"
	idgen "github.com/ballboxd/ballboxd/internal/platform/id"
	"github.com/ballboxd/ballboxd/internal/platform/logging"
	"github.com/ballboxd/ballboxd/internal/platform/resilience"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type repositories struct {
	users       user.Repository
	teams       team.Repository
	tournaments tournament.Repository
	matches     match.Repository
	ratings     rating.Repository
	social      social.Repository
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	statsCache := cache.NewStore(cfg.CacheTTL)
	userLocks := resilience.NewKeyedMutex()
	tokens := authtoken.NewStore(idgen.NewRandomGenerator())

	var publisher usecase.ActivityPublisher
	if cfg.WebhookEnabled {
		breaker := resilience.NewCircuitBreaker(
			cfg.WebhookCircuitFailureCount,
			cfg.WebhookCircuitOpenTimeout,
			cfg.WebhookCircuitHalfOpenReq,
		)
		publisher = webhook.NewPublisher(webhook.Config{
			URL:       cfg.WebhookURL,
			AuthToken: cfg.WebhookAuthToken,
			Timeout:   cfg.WebhookTimeout,
		}, breaker, logger)
	}

	handler := httpapi.NewHandler(
		usecase.NewAuthService(repos.users, tokens),
		usecase.NewMatchService(repos.matches, repos.teams, repos.tournaments, repos.ratings, statsCache),
		usecase.NewRatingService(repos.matches, repos.ratings, statsCache, userLocks, publisher, logger),
		usecase.NewMemoriesService(repos.users, repos.matches, repos.teams, repos.tournaments, repos.ratings, userLocks),
		usecase.NewProfileService(repos.users, repos.ratings, repos.social),
		usecase.NewSocialService(repos.users, repos.teams, repos.social, userLocks),
		usecase.NewFeedService(repos.users, repos.matches, repos.teams, repos.tournaments, repos.ratings, repos.social),
		usecase.NewSearchService(repos.teams, repos.tournaments, repos.matches),
		usecase.NewStatsWarmService(repos.matches, repos.ratings, statsCache, logger),
		logger,
	)

	router := httpapi.NewRouter(handler, tokens, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.InMemoryBackend() {
		logger.Info("storage backend", "kind", "memory")
		return repositories{
			users:       memory.NewUserRepository(nil),
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			matches:     memory.NewMatchRepository(memory.SeedMatches()),
			ratings:     memory.NewRatingRepository(nil),
			social:      memory.NewSocialRepository(),
		}, nil
	}

	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return repositories{}, err
	}

	logger.Info("storage backend", "kind", "postgres")
	return repositories{
		users:       postgres.NewUserRepository(db),
		teams:       postgres.NewTeamRepository(db),
		tournaments: postgres.NewTournamentRepository(db),
		matches:     postgres.NewMatchRepository(db),
		ratings:     postgres.NewRatingRepository(db),
		social:      postgres.NewSocialRepository(db),
	}, nil
}
