package scorer

// Scorer is one row of a league's top-scorer chart.
type Scorer struct {
	Rank        int
	PlayerID    int64
	PlayerName  string
	PhotoURL    string
	Nationality string
	TeamID      int64
	TeamName    string
	TeamLogoURL string
	Goals       int
	Assists     int
	Penalties   int
	Appearances int
}
