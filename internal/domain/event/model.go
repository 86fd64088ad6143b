package event

// Event kinds as reported by the upstream provider.
const (
	TypeGoal         = "Goal"
	TypeCard         = "Card"
	TypeSubstitution = "subst"
	TypeVAR          = "Var"
)

// Event is a single in-match incident belonging to one fixture.
type Event struct {
	FixtureID   int64
	Minute      int
	ExtraMinute int
	TeamID      int64
	TeamName    string
	Player      string
	Assist      string
	Type        string
	Detail      string
	Comments    string
}
