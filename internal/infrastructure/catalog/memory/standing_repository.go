package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/domain/standing"
)

// StandingRepository derives a league table from the finished fixtures in
// the seed catalog. Season is ignored: the seed only carries one edition.
type StandingRepository struct {
	mu       sync.RWMutex
	fixtures []fixture.Fixture
}

func NewStandingRepository(fixtures []fixture.Fixture) *StandingRepository {
	out := make([]fixture.Fixture, 0, len(fixtures))
	out = append(out, fixtures...)
	return &StandingRepository{fixtures: out}
}

func (r *StandingRepository) ListByLeagueSeason(_ context.Context, leagueID int64, _ int) ([]standing.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rowsByTeam := make(map[int64]*standing.Row, 16)
	row := func(side fixture.TeamSide) *standing.Row {
		current, ok := rowsByTeam[side.ID]
		if !ok {
			current = &standing.Row{TeamID: side.ID, TeamName: side.Name, TeamLogoURL: side.LogoURL}
			rowsByTeam[side.ID] = current
		}
		return current
	}

	for _, item := range r.fixtures {
		if item.League.ID != leagueID || !fixture.IsFinished(item.Status) {
			continue
		}
		if item.HomeGoals == nil || item.AwayGoals == nil {
			continue
		}

		home, away := row(item.Home), row(item.Away)
		homeGoals, awayGoals := *item.HomeGoals, *item.AwayGoals

		home.Played++
		away.Played++
		home.GoalsFor += homeGoals
		home.GoalsAgainst += awayGoals
		away.GoalsFor += awayGoals
		away.GoalsAgainst += homeGoals

		switch {
		case homeGoals > awayGoals:
			home.Won++
			home.Points += 3
			away.Lost++
		case homeGoals < awayGoals:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Draw++
			away.Draw++
			home.Points++
			away.Points++
		}
	}

	out := make([]standing.Row, 0, len(rowsByTeam))
	for _, item := range rowsByTeam {
		item.GoalDifference = item.GoalsFor - item.GoalsAgainst
		out = append(out, *item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].GoalDifference != out[j].GoalDifference {
			return out[i].GoalDifference > out[j].GoalDifference
		}
		if out[i].GoalsFor != out[j].GoalsFor {
			return out[i].GoalsFor > out[j].GoalsFor
		}
		return out[i].TeamName < out[j].TeamName
	})
	for idx := range out {
		out[idx].Rank = idx + 1
	}

	return out, nil
}
