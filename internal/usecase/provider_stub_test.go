package usecase

import (
	"context"
	"errors"

	"github.com/rmarques/futstats/internal/domain/event"
	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/scorer"
	"github.com/rmarques/futstats/internal/domain/standing"
	"github.com/rmarques/futstats/internal/domain/team"
)

var errStubNotConfigured = errors.New("stub call not configured")

type stubProvider struct {
	liveFixtures   func(ctx context.Context) ([]fixture.Fixture, error)
	fixturesByDate func(ctx context.Context, date string) ([]fixture.Fixture, error)
	fixtureEvents  func(ctx context.Context, fixtureID int64) ([]event.Event, error)
	searchTeams    func(ctx context.Context, query string) ([]team.Team, error)
	teamSquad      func(ctx context.Context, teamID int64) ([]player.Player, error)
	leaguesByCtry  func(ctx context.Context, country string) ([]league.League, error)
	standings      func(ctx context.Context, leagueID int64, season int) ([]standing.Row, error)
	topScorers     func(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error)
}

func (s *stubProvider) LiveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	if s.liveFixtures == nil {
		return nil, errStubNotConfigured
	}
	return s.liveFixtures(ctx)
}

func (s *stubProvider) FixturesByDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	if s.fixturesByDate == nil {
		return nil, errStubNotConfigured
	}
	return s.fixturesByDate(ctx, date)
}

func (s *stubProvider) FixtureEvents(ctx context.Context, fixtureID int64) ([]event.Event, error) {
	if s.fixtureEvents == nil {
		return nil, errStubNotConfigured
	}
	return s.fixtureEvents(ctx, fixtureID)
}

func (s *stubProvider) SearchTeams(ctx context.Context, query string) ([]team.Team, error) {
	if s.searchTeams == nil {
		return nil, errStubNotConfigured
	}
	return s.searchTeams(ctx, query)
}

func (s *stubProvider) TeamSquad(ctx context.Context, teamID int64) ([]player.Player, error) {
	if s.teamSquad == nil {
		return nil, errStubNotConfigured
	}
	return s.teamSquad(ctx, teamID)
}

func (s *stubProvider) LeaguesByCountry(ctx context.Context, country string) ([]league.League, error) {
	if s.leaguesByCtry == nil {
		return nil, errStubNotConfigured
	}
	return s.leaguesByCtry(ctx, country)
}

func (s *stubProvider) Standings(ctx context.Context, leagueID int64, season int) ([]standing.Row, error) {
	if s.standings == nil {
		return nil, errStubNotConfigured
	}
	return s.standings(ctx, leagueID, season)
}

func (s *stubProvider) TopScorers(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
	if s.topScorers == nil {
		return nil, errStubNotConfigured
	}
	return s.topScorers(ctx, leagueID, season)
}
