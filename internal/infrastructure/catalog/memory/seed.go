package memory

import (
	"time"

	"github.com/rmarques/futstats/internal/domain/event"
	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/scorer"
	"github.com/rmarques/futstats/internal/domain/team"
)

// Provider ids for the seeded entities, so catalog rows merge cleanly with
// live rows fetched for the same clubs and competitions.
const (
	LeagueIDSerieA        int64 = 71
	LeagueIDPremierLeague int64 = 39
	LeagueIDLaLiga        int64 = 140
	LeagueIDLibertadores  int64 = 13

	TeamIDFlamengo    int64 = 127
	TeamIDFluminense  int64 = 124
	TeamIDVasco       int64 = 133
	TeamIDBotafogo    int64 = 120
	TeamIDPalmeiras   int64 = 121
	TeamIDCorinthians int64 = 131
	TeamIDSaoPaulo    int64 = 126
	TeamIDSantos      int64 = 128
	TeamIDGremio      int64 = 130
	TeamIDInter       int64 = 119
	TeamIDAtleticoMG  int64 = 1062
	TeamIDCruzeiro    int64 = 135
	TeamIDRealMadrid  int64 = 541
	TeamIDBarcelona   int64 = 529
	TeamIDLiverpool   int64 = 40
	TeamIDArsenal     int64 = 42
)

const seedSeason = 2026

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID: LeagueIDSerieA, Name: "Serie A", Country: "Brazil", Type: league.TypeLeague,
			Seasons: []league.Season{
				{Year: 2025, Start: "2025-03-29", End: "2025-12-07"},
				{Year: 2026, Start: "2026-03-28", End: "2026-12-06", Current: true},
			},
		},
		{
			ID: LeagueIDPremierLeague, Name: "Premier League", Country: "England", Type: league.TypeLeague,
			Seasons: []league.Season{
				{Year: 2025, Start: "2025-08-16", End: "2026-05-24"},
				{Year: 2026, Start: "2026-08-15", End: "2027-05-23", Current: true},
			},
		},
		{
			ID: LeagueIDLaLiga, Name: "La Liga", Country: "Spain", Type: league.TypeLeague,
			Seasons: []league.Season{
				{Year: 2026, Start: "2026-08-14", End: "2027-05-30", Current: true},
			},
		},
		{
			ID: LeagueIDLibertadores, Name: "CONMEBOL Libertadores", Country: "World", Type: league.TypeCup,
			Seasons: []league.Season{
				{Year: 2026, Start: "2026-02-04", End: "2026-11-28", Current: true},
			},
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDFlamengo, Name: "Flamengo", Code: "FLA", Country: "Brazil", Founded: 1895, Venue: "Maracanã"},
		{ID: TeamIDFluminense, Name: "Fluminense", Code: "FLU", Country: "Brazil", Founded: 1902, Venue: "Maracanã"},
		{ID: TeamIDVasco, Name: "Vasco da Gama", Code: "VAS", Country: "Brazil", Founded: 1898, Venue: "São Januário"},
		{ID: TeamIDBotafogo, Name: "Botafogo", Code: "BOT", Country: "Brazil", Founded: 1904, Venue: "Nilton Santos"},
		{ID: TeamIDPalmeiras, Name: "Palmeiras", Code: "PAL", Country: "Brazil", Founded: 1914, Venue: "Allianz Parque"},
		{ID: TeamIDCorinthians, Name: "Corinthians", Code: "COR", Country: "Brazil", Founded: 1910, Venue: "Neo Química Arena"},
		{ID: TeamIDSaoPaulo, Name: "São Paulo", Code: "SAO", Country: "Brazil", Founded: 1930, Venue: "Morumbi"},
		{ID: TeamIDSantos, Name: "Santos", Code: "SAN", Country: "Brazil", Founded: 1912, Venue: "Vila Belmiro"},
		{ID: TeamIDGremio, Name: "Grêmio", Code: "GRE", Country: "Brazil", Founded: 1903, Venue: "Arena do Grêmio"},
		{ID: TeamIDInter, Name: "Internacional", Code: "INT", Country: "Brazil", Founded: 1909, Venue: "Beira-Rio"},
		{ID: TeamIDAtleticoMG, Name: "Atlético Mineiro", Code: "CAM", Country: "Brazil", Founded: 1908, Venue: "Arena MRV"},
		{ID: TeamIDCruzeiro, Name: "Cruzeiro", Code: "CRU", Country: "Brazil", Founded: 1921, Venue: "Mineirão"},
		{ID: TeamIDRealMadrid, Name: "Real Madrid", Code: "REA", Country: "Spain", Founded: 1902, Venue: "Santiago Bernabéu"},
		{ID: TeamIDBarcelona, Name: "Barcelona", Code: "BAR", Country: "Spain", Founded: 1899, Venue: "Camp Nou"},
		{ID: TeamIDLiverpool, Name: "Liverpool", Code: "LIV", Country: "England", Founded: 1892, Venue: "Anfield"},
		{ID: TeamIDArsenal, Name: "Arsenal", Code: "ARS", Country: "England", Founded: 1886, Venue: "Emirates Stadium"},
	}
}

func SeedPlayers() map[int64][]player.Player {
	return map[int64][]player.Player{
		TeamIDFlamengo: {
			{ID: 2734, Name: "Agustín Rossi", Nationality: "Argentina", Age: 30, Position: player.PositionGoalkeeper, Number: 1},
			{ID: 6727, Name: "Léo Pereira", Nationality: "Brazil", Age: 30, Position: player.PositionDefender, Number: 4},
			{ID: 9846, Name: "Giorgian de Arrascaeta", Nationality: "Uruguay", Age: 32, Position: player.PositionMidfielder, Number: 10},
			{ID: 10135, Name: "Gerson", Nationality: "Brazil", Age: 29, Position: player.PositionMidfielder, Number: 8},
			{ID: 276, Name: "Pedro Guilherme", Nationality: "Brazil", Age: 29, Position: player.PositionAttacker, Number: 9},
		},
		TeamIDFluminense: {
			{ID: 2482, Name: "Fábio", Nationality: "Brazil", Age: 45, Position: player.PositionGoalkeeper, Number: 1},
			{ID: 5448, Name: "Thiago Silva", Nationality: "Brazil", Age: 41, Position: player.PositionDefender, Number: 3},
			{ID: 10259, Name: "Paulo Henrique Ganso", Nationality: "Brazil", Age: 36, Position: player.PositionMidfielder, Number: 10},
			{ID: 1100, Name: "Germán Cano", Nationality: "Argentina", Age: 38, Position: player.PositionAttacker, Number: 14},
		},
		TeamIDPalmeiras: {
			{ID: 2520, Name: "Weverton", Nationality: "Brazil", Age: 38, Position: player.PositionGoalkeeper, Number: 21},
			{ID: 10500, Name: "Gustavo Gómez", Nationality: "Paraguay", Age: 33, Position: player.PositionDefender, Number: 15},
			{ID: 68510, Name: "Raphael Veiga", Nationality: "Brazil", Age: 31, Position: player.PositionMidfielder, Number: 23},
			{ID: 158023, Name: "Estêvão", Nationality: "Brazil", Age: 19, Position: player.PositionAttacker, Number: 41},
		},
	}
}

// SeedFixtures returns a small schedule around the given instant: two matches
// in play, one finished earlier the same day, and one scheduled for the next
// day. Kickoff times shift with now so the live entries stay plausible.
func SeedFixtures(now time.Time) []fixture.Fixture {
	now = now.UTC()
	elapsedDerby := 67
	elapsedPaulista := 12
	ftHome, ftAway := 2, 0
	liveHome, liveAway := 1, 1
	earlyHome, earlyAway := 0, 0
	winner := true
	loser := false

	serieA := fixture.LeagueRef{
		ID: LeagueIDSerieA, Name: "Serie A", Country: "Brazil",
		Season: seedSeason, Round: "Regular Season - 21",
	}

	return []fixture.Fixture{
		{
			ID:        9000101,
			KickoffAt: now.Add(-67 * time.Minute),
			Timezone:  "UTC",
			Venue:     "Maracanã",
			Status:    fixture.StatusSecondHalf,
			Elapsed:   &elapsedDerby,
			Home:      fixture.TeamSide{ID: TeamIDFlamengo, Name: "Flamengo"},
			Away:      fixture.TeamSide{ID: TeamIDFluminense, Name: "Fluminense"},
			HomeGoals: &liveHome,
			AwayGoals: &liveAway,
			League:    serieA,
		},
		{
			ID:        9000102,
			KickoffAt: now.Add(-12 * time.Minute),
			Timezone:  "UTC",
			Venue:     "Allianz Parque",
			Status:    fixture.StatusFirstHalf,
			Elapsed:   &elapsedPaulista,
			Home:      fixture.TeamSide{ID: TeamIDPalmeiras, Name: "Palmeiras"},
			Away:      fixture.TeamSide{ID: TeamIDCorinthians, Name: "Corinthians"},
			HomeGoals: &earlyHome,
			AwayGoals: &earlyAway,
			League:    serieA,
		},
		{
			ID:        9000103,
			KickoffAt: now.Add(-5 * time.Hour),
			Timezone:  "UTC",
			Venue:     "Nilton Santos",
			Status:    fixture.StatusFullTime,
			Home:      fixture.TeamSide{ID: TeamIDBotafogo, Name: "Botafogo", Winner: &winner},
			Away:      fixture.TeamSide{ID: TeamIDVasco, Name: "Vasco da Gama", Winner: &loser},
			HomeGoals: &ftHome,
			AwayGoals: &ftAway,
			League:    serieA,
		},
		{
			ID:        9000104,
			KickoffAt: now.Add(26 * time.Hour),
			Timezone:  "UTC",
			Venue:     "Beira-Rio",
			Status:    fixture.StatusNotStarted,
			Home:      fixture.TeamSide{ID: TeamIDInter, Name: "Internacional"},
			Away:      fixture.TeamSide{ID: TeamIDGremio, Name: "Grêmio"},
			League:    serieA,
		},
	}
}

// SeedEvents covers the seeded derby and the finished Botafogo match.
func SeedEvents() []event.Event {
	return []event.Event{
		{FixtureID: 9000101, Minute: 23, TeamID: TeamIDFlamengo, TeamName: "Flamengo", Player: "Pedro Guilherme", Assist: "Giorgian de Arrascaeta", Type: event.TypeGoal, Detail: "Normal Goal"},
		{FixtureID: 9000101, Minute: 41, TeamID: TeamIDFluminense, TeamName: "Fluminense", Player: "Germán Cano", Type: event.TypeGoal, Detail: "Penalty"},
		{FixtureID: 9000101, Minute: 44, TeamID: TeamIDFlamengo, TeamName: "Flamengo", Player: "Gerson", Type: event.TypeCard, Detail: "Yellow Card"},
		{FixtureID: 9000101, Minute: 58, TeamID: TeamIDFluminense, TeamName: "Fluminense", Player: "Paulo Henrique Ganso", Assist: "Lima", Type: event.TypeSubstitution, Detail: "Substitution 1"},
		{FixtureID: 9000103, Minute: 12, TeamID: TeamIDBotafogo, TeamName: "Botafogo", Player: "Igor Jesus", Type: event.TypeGoal, Detail: "Normal Goal"},
		{FixtureID: 9000103, Minute: 78, TeamID: TeamIDBotafogo, TeamName: "Botafogo", Player: "Savarino", Type: event.TypeGoal, Detail: "Normal Goal"},
	}
}

// SeedScorers is an all-time chart used when no provider chart is available.
func SeedScorers() []scorer.Scorer {
	return []scorer.Scorer{
		{Rank: 1, PlayerID: 8000001, PlayerName: "Pelé", Nationality: "Brazil", TeamID: TeamIDSantos, TeamName: "Santos", Goals: 643, Appearances: 659},
		{Rank: 2, PlayerID: 8000002, PlayerName: "Roberto Dinamite", Nationality: "Brazil", TeamID: TeamIDVasco, TeamName: "Vasco da Gama", Goals: 469, Appearances: 1110},
		{Rank: 3, PlayerID: 8000003, PlayerName: "Zico", Nationality: "Brazil", TeamID: TeamIDFlamengo, TeamName: "Flamengo", Goals: 468, Appearances: 731},
		{Rank: 4, PlayerID: 8000004, PlayerName: "Romário", Nationality: "Brazil", TeamID: TeamIDVasco, TeamName: "Vasco da Gama", Goals: 326, Appearances: 435},
		{Rank: 5, PlayerID: 8000005, PlayerName: "Fred", Nationality: "Brazil", TeamID: TeamIDFluminense, TeamName: "Fluminense", Goals: 199, Appearances: 378},
	}
}
