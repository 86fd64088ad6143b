package standing

// Row is one league table entry for one team.
type Row struct {
	Rank           int
	TeamID         int64
	TeamName       string
	TeamLogoURL    string
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
	Group          string
	Description    string
}
