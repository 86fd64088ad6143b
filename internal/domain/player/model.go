package player

import "fmt"

// Position names as reported by the upstream provider.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionAttacker   = "Attacker"
)

// SeasonStats holds one player's aggregates for one team and season.
type SeasonStats struct {
	TeamID      int64
	TeamName    string
	Season      int
	Appearances int
	Minutes     int
	Goals       int
	Assists     int
	Penalties   int
	YellowCards int
	RedCards    int
	Rating      string
}

// Player is an athlete with optional per-season statistics.
type Player struct {
	ID          int64
	Name        string
	Nationality string
	Age         int
	Position    string
	Number      int
	PhotoURL    string
	Statistics  []SeasonStats
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
