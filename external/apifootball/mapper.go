package apifootball

import (
	"strings"
	"time"

	"github.com/rmarques/futstats/internal/domain/event"
	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/scorer"
	"github.com/rmarques/futstats/internal/domain/standing"
	"github.com/rmarques/futstats/internal/domain/team"
)

func mapFixtures(items []fixtureItem) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		if item.Fixture.ID <= 0 {
			continue
		}
		out = append(out, fixture.Fixture{
			ID:        item.Fixture.ID,
			KickoffAt: parseProviderDateTime(item.Fixture.Date, item.Fixture.Timestamp),
			Timezone:  strings.TrimSpace(item.Fixture.Timezone),
			Venue:     strings.TrimSpace(item.Fixture.Venue.Name),
			Referee:   strings.TrimSpace(item.Fixture.Referee),
			Status:    fixture.NormalizeStatus(item.Fixture.Status.Short),
			Elapsed:   item.Fixture.Status.Elapsed,
			Home: fixture.TeamSide{
				ID:      item.Teams.Home.ID,
				Name:    strings.TrimSpace(item.Teams.Home.Name),
				LogoURL: strings.TrimSpace(item.Teams.Home.Logo),
				Winner:  item.Teams.Home.Winner,
			},
			Away: fixture.TeamSide{
				ID:      item.Teams.Away.ID,
				Name:    strings.TrimSpace(item.Teams.Away.Name),
				LogoURL: strings.TrimSpace(item.Teams.Away.Logo),
				Winner:  item.Teams.Away.Winner,
			},
			HomeGoals: item.Goals.Home,
			AwayGoals: item.Goals.Away,
			League: fixture.LeagueRef{
				ID:      item.League.ID,
				Name:    strings.TrimSpace(item.League.Name),
				Country: strings.TrimSpace(item.League.Country),
				LogoURL: strings.TrimSpace(item.League.Logo),
				Season:  item.League.Season,
				Round:   strings.TrimSpace(item.League.Round),
			},
		})
	}
	return out
}

// parseProviderDateTime prefers the RFC 3339 date string and falls back to
// the unix timestamp the provider sends alongside it.
func parseProviderDateTime(raw string, timestamp int64) time.Time {
	if value := strings.TrimSpace(raw); value != "" {
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed.UTC()
		}
	}
	if timestamp > 0 {
		return time.Unix(timestamp, 0).UTC()
	}
	return time.Time{}
}

func mapTeams(items []teamItem) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		if item.Team.ID <= 0 {
			continue
		}
		out = append(out, team.Team{
			ID:      item.Team.ID,
			Name:    strings.TrimSpace(item.Team.Name),
			Code:    strings.TrimSpace(item.Team.Code),
			Country: strings.TrimSpace(item.Team.Country),
			Founded: item.Team.Founded,
			LogoURL: strings.TrimSpace(item.Team.Logo),
			Venue:   strings.TrimSpace(item.Venue.Name),
		})
	}
	return out
}

func mapSquads(items []squadItem) []player.Player {
	out := make([]player.Player, 0, 32)
	for _, item := range items {
		for _, member := range item.Players {
			if member.ID <= 0 {
				continue
			}
			number := 0
			if member.Number != nil {
				number = *member.Number
			}
			out = append(out, player.Player{
				ID:       member.ID,
				Name:     strings.TrimSpace(member.Name),
				Age:      member.Age,
				Position: strings.TrimSpace(member.Position),
				Number:   number,
				PhotoURL: strings.TrimSpace(member.Photo),
			})
		}
	}
	return out
}

func mapLeagues(items []leagueItem) []league.League {
	out := make([]league.League, 0, len(items))
	for _, item := range items {
		if item.League.ID <= 0 {
			continue
		}
		seasons := make([]league.Season, 0, len(item.Seasons))
		for _, season := range item.Seasons {
			seasons = append(seasons, league.Season{
				Year:    season.Year,
				Start:   season.Start,
				End:     season.End,
				Current: season.Current,
			})
		}
		out = append(out, league.League{
			ID:      item.League.ID,
			Name:    strings.TrimSpace(item.League.Name),
			Country: strings.TrimSpace(item.Country.Name),
			LogoURL: strings.TrimSpace(item.League.Logo),
			FlagURL: strings.TrimSpace(item.Country.Flag),
			Type:    strings.TrimSpace(item.League.Type),
			Seasons: seasons,
		})
	}
	return out
}

func mapStandings(items []standingsItem) []standing.Row {
	out := make([]standing.Row, 0, 20)
	for _, item := range items {
		for _, group := range item.League.Standings {
			for _, entry := range group {
				if entry.Team.ID <= 0 {
					continue
				}
				out = append(out, standing.Row{
					Rank:           entry.Rank,
					TeamID:         entry.Team.ID,
					TeamName:       strings.TrimSpace(entry.Team.Name),
					TeamLogoURL:    strings.TrimSpace(entry.Team.Logo),
					Played:         entry.All.Played,
					Won:            entry.All.Win,
					Draw:           entry.All.Draw,
					Lost:           entry.All.Lose,
					GoalsFor:       entry.All.Goals.For,
					GoalsAgainst:   entry.All.Goals.Against,
					GoalDifference: entry.GoalsDiff,
					Points:         entry.Points,
					Form:           strings.TrimSpace(entry.Form),
					Group:          strings.TrimSpace(entry.Group),
					Description:    strings.TrimSpace(entry.Description),
				})
			}
		}
	}
	return out
}

func mapScorers(items []scorerItem) []scorer.Scorer {
	out := make([]scorer.Scorer, 0, len(items))
	for index, item := range items {
		if item.Player.ID <= 0 {
			continue
		}
		row := scorer.Scorer{
			Rank:        index + 1,
			PlayerID:    item.Player.ID,
			PlayerName:  strings.TrimSpace(item.Player.Name),
			PhotoURL:    strings.TrimSpace(item.Player.Photo),
			Nationality: strings.TrimSpace(item.Player.Nationality),
		}
		if len(item.Statistics) > 0 {
			stat := item.Statistics[0]
			row.TeamID = stat.Team.ID
			row.TeamName = strings.TrimSpace(stat.Team.Name)
			row.TeamLogoURL = strings.TrimSpace(stat.Team.Logo)
			row.Appearances = stat.Games.Appearences
			row.Goals = intValue(stat.Goals.Total)
			row.Assists = intValue(stat.Goals.Assists)
			row.Penalties = intValue(stat.Penalty.Scored)
		}
		out = append(out, row)
	}
	return out
}

func mapEvents(fixtureID int64, items []eventItem) []event.Event {
	out := make([]event.Event, 0, len(items))
	for _, item := range items {
		extra := 0
		if item.Time.Extra != nil {
			extra = *item.Time.Extra
		}
		out = append(out, event.Event{
			FixtureID:   fixtureID,
			Minute:      item.Time.Elapsed,
			ExtraMinute: extra,
			TeamID:      item.Team.ID,
			TeamName:    strings.TrimSpace(item.Team.Name),
			Player:      strings.TrimSpace(item.Player.Name),
			Assist:      strings.TrimSpace(item.Assist.Name),
			Type:        strings.TrimSpace(item.Type),
			Detail:      strings.TrimSpace(item.Detail),
			Comments:    strings.TrimSpace(item.Comments),
		})
	}
	return out
}

func intValue(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
