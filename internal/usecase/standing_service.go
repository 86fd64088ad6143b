package usecase

import (
	"context"
	"fmt"

	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/standing"
	"github.com/rmarques/futstats/internal/platform/cache"
	"github.com/rmarques/futstats/internal/platform/logging"
)

type StandingService struct {
	provider Provider
	leagues  league.Repository
	fallback standing.Repository
	cache    *cache.Store
	logger   *logging.Logger
}

func NewStandingService(provider Provider, leagues league.Repository, fallback standing.Repository, cacheStore *cache.Store, logger *logging.Logger) *StandingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingService{
		provider: provider,
		leagues:  leagues,
		fallback: fallback,
		cache:    cacheStore,
		logger:   logger,
	}
}

// Table returns the league table for a season. season <= 0 resolves to the
// league's current season from the catalog.
func (s *StandingService) Table(ctx context.Context, leagueID int64, season int) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Table")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	item, found, err := s.leagues.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}
	if season <= 0 {
		current, ok := item.CurrentSeason()
		if !ok {
			return nil, fmt.Errorf("%w: league=%d has no seasons and none was given", ErrInvalidInput, leagueID)
		}
		season = current.Year
	}

	if s.provider != nil {
		rows, err := loadCached(ctx, s.cache, fmt.Sprintf("standings:%d:%d", leagueID, season), func(ctx context.Context) ([]standing.Row, error) {
			return s.provider.Standings(ctx, leagueID, season)
		})
		if err == nil && len(rows) > 0 {
			return rows, nil
		}
		if err != nil {
			s.logger.WarnContext(ctx, "standings from provider failed, serving computed table", "league_id", leagueID, "season", season, "error", err)
		}
	}

	rows, err := s.fallback.ListByLeagueSeason(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("compute fallback standings: %w", err)
	}

	return rows, nil
}
