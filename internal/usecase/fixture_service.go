package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rmarques/futstats/internal/domain/event"
	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/platform/cache"
	"github.com/rmarques/futstats/internal/platform/logging"
)

// FixtureService answers match queries with a three-tier source order:
// live provider, TTL cache, seed catalog.
type FixtureService struct {
	provider Provider
	catalog  fixture.Repository
	events   event.Repository
	cache    *cache.Store
	logger   *logging.Logger
}

func NewFixtureService(provider Provider, catalog fixture.Repository, events event.Repository, cacheStore *cache.Store, logger *logging.Logger) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{
		provider: provider,
		catalog:  catalog,
		events:   events,
		cache:    cacheStore,
		logger:   logger,
	}
}

// Live lists matches currently in play. Provider rows are re-checked against
// the live status set because "live=all" occasionally includes matches that
// just went to full time. limit <= 0 means no truncation.
func (s *FixtureService) Live(ctx context.Context, limit int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Live")
	defer span.End()

	if s.provider != nil {
		fixtures, err := loadCached(ctx, s.cache, "fixtures:live", s.provider.LiveFixtures)
		if err == nil {
			return truncateFixtures(filterLive(fixtures), limit), nil
		}
		s.logger.WarnContext(ctx, "live fixtures from provider failed, serving catalog", "error", err)
	}

	fixtures, err := s.catalog.ListLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list live fixtures from catalog: %w", err)
	}

	return truncateFixtures(filterLive(fixtures), limit), nil
}

// ByDate lists every fixture kicking off on a calendar day (YYYY-MM-DD).
func (s *FixtureService) ByDate(ctx context.Context, date string, limit int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ByDate")
	defer span.End()

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if s.provider != nil {
		fixtures, err := loadCached(ctx, s.cache, "fixtures:date:"+date, func(ctx context.Context) ([]fixture.Fixture, error) {
			return s.provider.FixturesByDate(ctx, date)
		})
		if err == nil {
			return truncateFixtures(fixtures, limit), nil
		}
		s.logger.WarnContext(ctx, "fixtures by date from provider failed, serving catalog", "date", date, "error", err)
	}

	fixtures, err := s.catalog.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by date from catalog: %w", err)
	}

	return truncateFixtures(fixtures, limit), nil
}

// Events returns the in-match timeline for one fixture. A fixture without
// recorded events yields an empty slice, not an error.
func (s *FixtureService) Events(ctx context.Context, fixtureID int64) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Events")
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: fixture id must be greater than zero", ErrInvalidInput)
	}

	if s.provider != nil {
		events, err := loadCached(ctx, s.cache, "fixtures:events:"+strconv.FormatInt(fixtureID, 10), func(ctx context.Context) ([]event.Event, error) {
			return s.provider.FixtureEvents(ctx, fixtureID)
		})
		if err == nil {
			return events, nil
		}
		s.logger.WarnContext(ctx, "fixture events from provider failed, serving catalog", "fixture_id", fixtureID, "error", err)
	}

	events, err := s.events.ListByFixture(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("list fixture events from catalog: %w", err)
	}

	return events, nil
}

func filterLive(fixtures []fixture.Fixture) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(fixtures))
	for _, item := range fixtures {
		if fixture.IsLive(item.Status) {
			out = append(out, item)
		}
	}
	return out
}

func truncateFixtures(fixtures []fixture.Fixture, limit int) []fixture.Fixture {
	if limit <= 0 || len(fixtures) <= limit {
		return fixtures
	}
	return fixtures[:limit]
}
