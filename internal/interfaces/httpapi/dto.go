package httpapi

import (
	"time"

	"github.com/rmarques/futstats/internal/domain/account"
	"github.com/rmarques/futstats/internal/domain/event"
	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/scorer"
	"github.com/rmarques/futstats/internal/domain/standing"
	"github.com/rmarques/futstats/internal/domain/team"
)

type fixtureTeamSideDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
	Winner  *bool  `json:"winner,omitempty"`
}

type fixtureLeagueDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	LogoURL string `json:"logoUrl,omitempty"`
	Season  int    `json:"season,omitempty"`
	Round   string `json:"round,omitempty"`
}

type fixtureDTO struct {
	ID          int64              `json:"id"`
	KickoffAt   string             `json:"kickoffAt"`
	Timezone    string             `json:"timezone,omitempty"`
	Venue       string             `json:"venue,omitempty"`
	Referee     string             `json:"referee,omitempty"`
	Status      string             `json:"status"`
	StatusGroup string             `json:"statusGroup"`
	Elapsed     *int               `json:"elapsed,omitempty"`
	Home        fixtureTeamSideDTO `json:"home"`
	Away        fixtureTeamSideDTO `json:"away"`
	HomeGoals   *int               `json:"homeGoals,omitempty"`
	AwayGoals   *int               `json:"awayGoals,omitempty"`
	League      fixtureLeagueDTO   `json:"league"`
}

type eventDTO struct {
	FixtureID   int64  `json:"fixtureId"`
	Minute      int    `json:"minute"`
	ExtraMinute int    `json:"extraMinute,omitempty"`
	TeamID      int64  `json:"teamId"`
	TeamName    string `json:"teamName,omitempty"`
	Player      string `json:"player,omitempty"`
	Assist      string `json:"assist,omitempty"`
	Type        string `json:"type"`
	Detail      string `json:"detail,omitempty"`
	Comments    string `json:"comments,omitempty"`
}

type teamDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Country string `json:"country,omitempty"`
	Founded int    `json:"founded,omitempty"`
	LogoURL string `json:"logoUrl,omitempty"`
	Venue   string `json:"venue,omitempty"`
}

type playerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
	Age         int    `json:"age,omitempty"`
	Position    string `json:"position,omitempty"`
	Number      int    `json:"number,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

type seasonDTO struct {
	Year    int    `json:"year"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Current bool   `json:"current"`
}

type leagueDTO struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Country string      `json:"country,omitempty"`
	LogoURL string      `json:"logoUrl,omitempty"`
	FlagURL string      `json:"flagUrl,omitempty"`
	Type    string      `json:"type"`
	Seasons []seasonDTO `json:"seasons,omitempty"`
}

type standingRowDTO struct {
	Rank           int    `json:"rank"`
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	TeamLogoURL    string `json:"teamLogoUrl,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Form           string `json:"form,omitempty"`
	Group          string `json:"group,omitempty"`
	Description    string `json:"description,omitempty"`
}

type scorerDTO struct {
	Rank        int    `json:"rank"`
	PlayerID    int64  `json:"playerId"`
	PlayerName  string `json:"playerName"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	TeamID      int64  `json:"teamId"`
	TeamName    string `json:"teamName,omitempty"`
	TeamLogoURL string `json:"teamLogoUrl,omitempty"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Penalties   int    `json:"penalties"`
	Appearances int    `json:"appearances"`
}

type accountDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type authResponseDTO struct {
	Account accountDTO `json:"account"`
	Token   string     `json:"token"`
}

type favoritesDTO struct {
	Teams   []teamDTO   `json:"teams"`
	Leagues []leagueDTO `json:"leagues"`
	Players []playerDTO `json:"players"`
}

// statusGroup buckets the provider's short status codes into the three
// groups clients filter on.
func statusGroup(status string) string {
	switch {
	case fixture.IsLive(status):
		return "live"
	case fixture.IsFinished(status):
		return "finished"
	default:
		return "scheduled"
	}
}

func fixtureToDTO(f fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:          f.ID,
		KickoffAt:   f.KickoffAt.UTC().Format(time.RFC3339),
		Timezone:    f.Timezone,
		Venue:       f.Venue,
		Referee:     f.Referee,
		Status:      f.Status,
		StatusGroup: statusGroup(f.Status),
		Elapsed:     f.Elapsed,
		Home:        teamSideToDTO(f.Home),
		Away:        teamSideToDTO(f.Away),
		HomeGoals:   f.HomeGoals,
		AwayGoals:   f.AwayGoals,
		League: fixtureLeagueDTO{
			ID:      f.League.ID,
			Name:    f.League.Name,
			Country: f.League.Country,
			LogoURL: f.League.LogoURL,
			Season:  f.League.Season,
			Round:   f.League.Round,
		},
	}
}

func teamSideToDTO(side fixture.TeamSide) fixtureTeamSideDTO {
	return fixtureTeamSideDTO{
		ID:      side.ID,
		Name:    side.Name,
		LogoURL: side.LogoURL,
		Winner:  side.Winner,
	}
}

func fixturesToDTOs(fixtures []fixture.Fixture) []fixtureDTO {
	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	return items
}

func eventToDTO(e event.Event) eventDTO {
	return eventDTO{
		FixtureID:   e.FixtureID,
		Minute:      e.Minute,
		ExtraMinute: e.ExtraMinute,
		TeamID:      e.TeamID,
		TeamName:    e.TeamName,
		Player:      e.Player,
		Assist:      e.Assist,
		Type:        e.Type,
		Detail:      e.Detail,
		Comments:    e.Comments,
	}
}

func eventsToDTOs(events []event.Event) []eventDTO {
	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}

	return items
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:      t.ID,
		Name:    t.Name,
		Code:    t.Code,
		Country: t.Country,
		Founded: t.Founded,
		LogoURL: t.LogoURL,
		Venue:   t.Venue,
	}
}

func teamsToDTOs(teams []team.Team) []teamDTO {
	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	return items
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:          p.ID,
		Name:        p.Name,
		Nationality: p.Nationality,
		Age:         p.Age,
		Position:    p.Position,
		Number:      p.Number,
		PhotoURL:    p.PhotoURL,
	}
}

func playersToDTOs(players []player.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	return items
}

func leagueToDTO(l league.League) leagueDTO {
	seasons := make([]seasonDTO, 0, len(l.Seasons))
	for _, s := range l.Seasons {
		seasons = append(seasons, seasonDTO{
			Year:    s.Year,
			Start:   s.Start,
			End:     s.End,
			Current: s.Current,
		})
	}

	return leagueDTO{
		ID:      l.ID,
		Name:    l.Name,
		Country: l.Country,
		LogoURL: l.LogoURL,
		FlagURL: l.FlagURL,
		Type:    l.Type,
		Seasons: seasons,
	}
}

func leaguesToDTOs(leagues []league.League) []leagueDTO {
	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	return items
}

func standingRowToDTO(row standing.Row) standingRowDTO {
	return standingRowDTO{
		Rank:           row.Rank,
		TeamID:         row.TeamID,
		TeamName:       row.TeamName,
		TeamLogoURL:    row.TeamLogoURL,
		Played:         row.Played,
		Won:            row.Won,
		Draw:           row.Draw,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		Form:           row.Form,
		Group:          row.Group,
		Description:    row.Description,
	}
}

func standingRowsToDTOs(rows []standing.Row) []standingRowDTO {
	items := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingRowToDTO(row))
	}

	return items
}

func scorerToDTO(s scorer.Scorer) scorerDTO {
	return scorerDTO{
		Rank:        s.Rank,
		PlayerID:    s.PlayerID,
		PlayerName:  s.PlayerName,
		PhotoURL:    s.PhotoURL,
		Nationality: s.Nationality,
		TeamID:      s.TeamID,
		TeamName:    s.TeamName,
		TeamLogoURL: s.TeamLogoURL,
		Goals:       s.Goals,
		Assists:     s.Assists,
		Penalties:   s.Penalties,
		Appearances: s.Appearances,
	}
}

func scorersToDTOs(scorers []scorer.Scorer) []scorerDTO {
	items := make([]scorerDTO, 0, len(scorers))
	for _, s := range scorers {
		items = append(items, scorerToDTO(s))
	}

	return items
}

func accountToDTO(a account.Account) accountDTO {
	return accountDTO{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func favoritesToDTO(f account.Favorites) favoritesDTO {
	return favoritesDTO{
		Teams:   teamsToDTOs(f.Teams),
		Leagues: leaguesToDTOs(f.Leagues),
		Players: playersToDTOs(f.Players),
	}
}
