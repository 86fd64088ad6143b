package fixture

import (
	"strings"
	"time"
)

// Short status codes as reported by the upstream provider.
const (
	StatusNotStarted   = "NS"
	StatusFirstHalf    = "1H"
	StatusHalfTime     = "HT"
	StatusSecondHalf   = "2H"
	StatusExtraTime    = "ET"
	StatusBreakTime    = "BT"
	StatusPenalties    = "P"
	StatusSuspended    = "SUSP"
	StatusInterrupted  = "INT"
	StatusLive         = "LIVE"
	StatusFullTime     = "FT"
	StatusAfterExtra   = "AET"
	StatusAfterPens    = "PEN"
	StatusPostponed    = "PST"
	StatusCancelled    = "CANC"
	StatusAbandoned    = "ABD"
	StatusTechnicalWin = "AWD"
	StatusWalkover     = "WO"
)

// TeamSide identifies one of the two competing teams inside a fixture.
type TeamSide struct {
	ID      int64
	Name    string
	LogoURL string
	Winner  *bool
}

// LeagueRef is the denormalized league context a fixture belongs to.
type LeagueRef struct {
	ID      int64
	Name    string
	Country string
	LogoURL string
	Season  int
	Round   string
}

// Fixture is a single scheduled or played match between two teams. Instances
// are value snapshots: they are produced by a provider fetch or the catalog
// seed and never mutated in place.
type Fixture struct {
	ID        int64
	KickoffAt time.Time
	Timezone  string
	Venue     string
	Referee   string
	Status    string
	Elapsed   *int
	Home      TeamSide
	Away      TeamSide
	HomeGoals *int
	AwayGoals *int
	League    LeagueRef
}

// NormalizeStatus uppercases and trims a provider status code. Empty input
// maps to StatusNotStarted so a missing code classifies as scheduled.
func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

// IsLive reports whether the status code marks a match currently in play,
// including half-time and other in-match pauses.
func IsLive(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFirstHalf, StatusSecondHalf, StatusHalfTime,
		StatusExtraTime, StatusBreakTime, StatusPenalties,
		StatusSuspended, StatusInterrupted, StatusLive:
		return true
	default:
		return false
	}
}

// IsFinished reports whether the match reached a final result.
func IsFinished(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFullTime, StatusAfterExtra, StatusAfterPens:
		return true
	default:
		return false
	}
}

// IsScheduled is the negation of the live and finished sets. Postponed and
// abandoned codes land here as well; use IsAbandonedLike to tell them apart
// from true pre-kickoff fixtures.
func IsScheduled(status string) bool {
	return !IsLive(status) && !IsFinished(status)
}

// IsAbandonedLike reports codes for matches that will not be played as
// scheduled (postponed, cancelled, abandoned, awarded results).
func IsAbandonedLike(status string) bool {
	switch NormalizeStatus(status) {
	case StatusPostponed, StatusCancelled, StatusAbandoned,
		StatusTechnicalWin, StatusWalkover:
		return true
	default:
		return false
	}
}
