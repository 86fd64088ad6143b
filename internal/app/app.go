package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rmarques/futstats/external/apifootball"
	"github.com/rmarques/futstats/internal/config"
	"github.com/rmarques/futstats/internal/infrastructure/accountstore"
	"github.com/rmarques/futstats/internal/infrastructure/catalog/memory"
	"github.com/rmarques/futstats/internal/infrastructure/kvstore"
	"github.com/rmarques/futstats/internal/interfaces/httpapi"
	"github.com/rmarques/futstats/internal/platform/cache"
	"github.com/rmarques/futstats/internal/platform/id"
	"github.com/rmarques/futstats/internal/platform/logging"
	"github.com/rmarques/futstats/internal/platform/resilience"
	"github.com/rmarques/futstats/internal/usecase"
)

// NewHTTPServer wires the full service graph and returns the server plus a
// closer that releases the account store.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	kv, closeKV, err := openAccountKV(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	accounts := accountstore.New(kv)

	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	fixtureRepo := memory.NewFixtureRepository(memory.SeedFixtures(time.Now().UTC()))
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	scorerRepo := memory.NewScorerRepository(memory.SeedScorers())
	standingRepo := memory.NewStandingRepository(memory.SeedFixtures(time.Now().UTC()))

	var provider usecase.Provider
	if cfg.APIFootballEnabled {
		provider = apifootball.NewClient(apifootball.ClientConfig{
			BaseURL:    cfg.APIFootballBaseURL,
			APIKey:     cfg.APIFootballAPIKey,
			Timeout:    cfg.APIFootballTimeout,
			MaxRetries: cfg.APIFootballMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.APIFootballCircuitEnabled,
				FailureThreshold: cfg.APIFootballCircuitFailureCount,
				OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
			},
		})
		logger.Info("api-football provider enabled", "base_url", cfg.APIFootballBaseURL)
	} else {
		logger.Info("api-football provider disabled, serving catalog data only")
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	fixtureSvc := usecase.NewFixtureService(provider, fixtureRepo, eventRepo, cacheStore, logger)
	teamSvc := usecase.NewTeamService(provider, teamRepo, playerRepo, cacheStore, logger, cfg.SearchSupplementThreshold)
	leagueSvc := usecase.NewLeagueService(provider, leagueRepo, cacheStore, logger)
	standingSvc := usecase.NewStandingService(provider, leagueRepo, standingRepo, cacheStore, logger)
	scorerSvc := usecase.NewScorerService(provider, leagueRepo, scorerRepo, cacheStore, logger)
	accountSvc := usecase.NewAccountService(accounts, id.NewUUIDGenerator(), teamRepo, leagueRepo, playerRepo, logger, cfg.SessionTTL)
	warmSvc := usecase.NewWarmService(fixtureSvc, standingSvc, scorerSvc, logger)

	handler := httpapi.NewHandler(fixtureSvc, teamSvc, leagueSvc, standingSvc, scorerSvc, accountSvc, warmSvc, logger)
	router := httpapi.NewRouter(handler, accountSvc, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = closeKV()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeKV, nil
}

func openAccountKV(ctx context.Context, cfg config.Config, logger *logging.Logger) (kvstore.Store, func() error, error) {
	if cfg.AccountDBPath == "" {
		logger.Info("account store running in-memory, sessions reset on restart")
		return kvstore.NewMemory(), func() error { return nil }, nil
	}

	sqliteStore, err := kvstore.OpenSQLite(ctx, cfg.AccountDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open account store: %w", err)
	}
	logger.Info("account store opened", "path", cfg.AccountDBPath)

	return sqliteStore, sqliteStore.Close, nil
}
