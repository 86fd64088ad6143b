package usecase

import (
	"context"
	"fmt"

	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/scorer"
	"github.com/rmarques/futstats/internal/platform/cache"
	"github.com/rmarques/futstats/internal/platform/logging"
)

type ScorerService struct {
	provider Provider
	leagues  league.Repository
	fallback scorer.Repository
	cache    *cache.Store
	logger   *logging.Logger
}

func NewScorerService(provider Provider, leagues league.Repository, fallback scorer.Repository, cacheStore *cache.Store, logger *logging.Logger) *ScorerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScorerService{
		provider: provider,
		leagues:  leagues,
		fallback: fallback,
		cache:    cacheStore,
		logger:   logger,
	}
}

// TopScorers returns the scoring chart for a league season. When the
// provider cannot answer, the hand-authored all-time chart keeps the screen
// populated.
func (s *ScorerService) TopScorers(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.TopScorers")
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
		chart, err := loadCached(ctx, s.cache, fmt.Sprintf("scorers:%d:%d", leagueID, season), func(ctx context.Context) ([]scorer.Scorer, error) {
			return s.provider.TopScorers(ctx, leagueID, season)
		})
		if err == nil && len(chart) > 0 {
			return chart, nil
		}
		if err != nil {
			s.logger.WarnContext(ctx, "top scorers from provider failed, serving seed chart", "league_id", leagueID, "season", season, "error", err)
		}
	}

	chart, err := s.fallback.ListByLeagueSeason(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("list fallback scorers: %w", err)
	}

	return chart, nil
}
