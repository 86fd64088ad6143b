package usecase

import (
	"context"

	"github.com/rmarques/futstats/internal/domain/event"
	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/scorer"
	"github.com/rmarques/futstats/internal/domain/standing"
	"github.com/rmarques/futstats/internal/domain/team"
)

// Provider is the outbound port to the live football data API. A nil
// provider means the service runs catalog-only; every consumer must treat
// provider errors as a reason to fall back, never as a reason to fail the
// request while the catalog can still answer it.
type Provider interface {
	LiveFixtures(ctx context.Context) ([]fixture.Fixture, error)
	FixturesByDate(ctx context.Context, date string) ([]fixture.Fixture, error)
	FixtureEvents(ctx context.Context, fixtureID int64) ([]event.Event, error)
	SearchTeams(ctx context.Context, query string) ([]team.Team, error)
	TeamSquad(ctx context.Context, teamID int64) ([]player.Player, error)
	LeaguesByCountry(ctx context.Context, country string) ([]league.League, error)
	Standings(ctx context.Context, leagueID int64, season int) ([]standing.Row, error)
	TopScorers(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error)
}
