package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rmarques/futstats/internal/domain/scorer"
	catalog "github.com/rmarques/futstats/internal/infrastructure/catalog/memory"
	"github.com/rmarques/futstats/internal/platform/logging"
)

func TestScorerService_TopScorersPrefersProvider(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		topScorers: func(_ context.Context, _ int64, _ int) ([]scorer.Scorer, error) {
			return []scorer.Scorer{{Rank: 1, PlayerID: 276, PlayerName: "Pedro Guilherme", Goals: 24}}, nil
		},
	}
	svc := NewScorerService(provider, catalog.NewLeagueRepository(catalog.SeedLeagues()), catalog.NewScorerRepository(catalog.SeedScorers()), nil, logging.NewNop())

	chart, err := svc.TopScorers(context.Background(), catalog.LeagueIDSerieA, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chart) != 1 || chart[0].PlayerName != "Pedro Guilherme" {
		t.Fatalf("expected provider chart, got=%+v", chart)
	}
}

func TestScorerService_TopScorersFallsBackToSeedChart(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		topScorers: func(_ context.Context, _ int64, _ int) ([]scorer.Scorer, error) {
			return nil, errors.New("upstream down")
		},
	}
	svc := NewScorerService(provider, catalog.NewLeagueRepository(catalog.SeedLeagues()), catalog.NewScorerRepository(catalog.SeedScorers()), nil, logging.NewNop())

	chart, err := svc.TopScorers(context.Background(), catalog.LeagueIDSerieA, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chart) == 0 || chart[0].PlayerName != "Pelé" {
		t.Fatalf("expected seed chart led by Pelé, got=%+v", chart)
	}
}

func TestScorerService_EmptyProviderChartFallsBack(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		topScorers: func(_ context.Context, _ int64, _ int) ([]scorer.Scorer, error) {
			return []scorer.Scorer{}, nil
		},
	}
	svc := NewScorerService(provider, catalog.NewLeagueRepository(catalog.SeedLeagues()), catalog.NewScorerRepository(catalog.SeedScorers()), nil, logging.NewNop())

	chart, err := svc.TopScorers(context.Background(), catalog.LeagueIDSerieA, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chart) == 0 {
		t.Fatal("an empty provider chart must not leave the screen blank")
	}
}
