package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rmarques/futstats/internal/domain/scorer"
	"github.com/rmarques/futstats/internal/domain/standing"
	catalog "github.com/rmarques/futstats/internal/infrastructure/catalog/memory"
	"github.com/rmarques/futstats/internal/platform/cache"
	"github.com/rmarques/futstats/internal/platform/logging"
)

func newWarmService(provider Provider) *WarmService {
	now := time.Date(2026, 8, 29, 19, 0, 0, 0, time.UTC)
	store := cache.NewStore(time.Minute)
	logger := logging.NewNop()

	leagues := catalog.NewLeagueRepository(catalog.SeedLeagues())
	fixtures := NewFixtureService(provider, catalog.NewFixtureRepository(catalog.SeedFixtures(now)), catalog.NewEventRepository(catalog.SeedEvents()), store, logger)
	standings := NewStandingService(provider, leagues, catalog.NewStandingRepository(catalog.SeedFixtures(now)), store, logger)
	scorers := NewScorerService(provider, leagues, catalog.NewScorerRepository(catalog.SeedScorers()), store, logger)

	return NewWarmService(fixtures, standings, scorers, logger)
}

func TestWarmService_WarmRunsAllLeagueTasks(t *testing.T) {
	t.Parallel()

	var standingCalls atomic.Int32
	var scorerCalls atomic.Int32
	stub := &stubProvider{
		standings: func(_ context.Context, _ int64, _ int) ([]standing.Row, error) {
			standingCalls.Add(1)
			return []standing.Row{{Rank: 1, TeamID: 127, Points: 3}}, nil
		},
		topScorers: func(_ context.Context, _ int64, _ int) ([]scorer.Scorer, error) {
			scorerCalls.Add(1)
			return []scorer.Scorer{{Rank: 1, PlayerID: 276, Goals: 24}}, nil
		},
	}
	svc := newWarmService(stub)

	result, err := svc.Warm(context.Background(), WarmInput{
		LeagueIDs: []int64{catalog.LeagueIDSerieA, catalog.LeagueIDPremierLeague, catalog.LeagueIDSerieA},
		Season:    2026,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TaskCount != 2 {
		t.Fatalf("expected duplicate league collapsed to 2 tasks, got=%d", result.TaskCount)
	}
	if result.SuccessCount != 2 || result.FailedCount != 0 {
		t.Fatalf("unexpected counts %+v", result)
	}
	if standingCalls.Load() != 2 || scorerCalls.Load() != 2 {
		t.Fatalf("expected one standings and scorers fetch per league, got=%d and %d", standingCalls.Load(), scorerCalls.Load())
	}
}

func TestWarmService_WarmReportsPerLeagueFailures(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{
		standings: func(_ context.Context, leagueID int64, _ int) ([]standing.Row, error) {
			if leagueID == catalog.LeagueIDPremierLeague {
				return nil, errors.New("upstream down")
			}
			return []standing.Row{{Rank: 1, TeamID: 127, Points: 3}}, nil
		},
		topScorers: func(_ context.Context, _ int64, _ int) ([]scorer.Scorer, error) {
			return []scorer.Scorer{{Rank: 1, PlayerID: 276, Goals: 24}}, nil
		},
	}
	svc := newWarmService(stub)

	result, err := svc.Warm(context.Background(), WarmInput{
		LeagueIDs: []int64{catalog.LeagueIDSerieA, catalog.LeagueIDPremierLeague},
		Season:    2026,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The Premier League standings fetch fails upstream but the standing
	// service still answers from its fallback, so the warm itself succeeds.
	if result.SuccessCount != 2 {
		t.Fatalf("expected fallback to absorb the provider failure, got=%+v", result)
	}
}

func TestWarmService_WarmRequiresLeagues(t *testing.T) {
	t.Parallel()

	svc := newWarmService(&stubProvider{})

	_, err := svc.Warm(context.Background(), WarmInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}
