package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/platform/cache"
	"github.com/rmarques/futstats/internal/platform/logging"
)

type LeagueService struct {
	provider Provider
	catalog  league.Repository
	cache    *cache.Store
	logger   *logging.Logger
}

func NewLeagueService(provider Provider, catalog league.Repository, cacheStore *cache.Store, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		provider: provider,
		catalog:  catalog,
		cache:    cacheStore,
		logger:   logger,
	}
}

// List returns the curated league catalog. The seed is the source of truth
// here: the provider index carries a thousand competitions the app never
// shows.
func (s *LeagueService) List(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.List")
	defer span.End()

	leagues, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues from catalog: %w", err)
	}

	return leagues, nil
}

// GetByID resolves one league from the catalog.
func (s *LeagueService) GetByID(ctx context.Context, leagueID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetByID")
	defer span.End()

	if leagueID <= 0 {
		return league.League{}, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	item, found, err := s.catalog.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	return item, nil
}

// ByCountry queries the provider league index for a country, falling back
// to a country filter over the catalog.
func (s *LeagueService) ByCountry(ctx context.Context, country string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ByCountry")
	defer span.End()

	country = strings.TrimSpace(country)
	if country == "" {
		return nil, fmt.Errorf("%w: country is required", ErrInvalidInput)
	}

	if s.provider != nil {
		leagues, err := loadCached(ctx, s.cache, "leagues:country:"+strings.ToLower(country), func(ctx context.Context) ([]league.League, error) {
			return s.provider.LeaguesByCountry(ctx, country)
		})
		if err == nil {
			return leagues, nil
		}
		s.logger.WarnContext(ctx, "leagues by country from provider failed, serving catalog", "country", country, "error", err)
	}

	all, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues from catalog: %w", err)
	}

	out := make([]league.League, 0, len(all))
	for _, item := range all {
		if strings.EqualFold(item.Country, country) {
			out = append(out, item)
		}
	}

	return out, nil
}
