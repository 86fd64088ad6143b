package league

import "fmt"

const (
	TypeLeague = "League"
	TypeCup    = "Cup"
)

// Season is one edition of a competition.
type Season struct {
	Year    int
	Start   string
	End     string
	Current bool
}

// League is a competition: a national league or a cup.
type League struct {
	ID      int64
	Name    string
	Country string
	LogoURL string
	FlagURL string
	Type    string
	Seasons []Season
}

// CurrentSeason returns the season flagged current, falling back to the most
// recent one when the provider marks none.
func (l League) CurrentSeason() (Season, bool) {
	var latest Season
	found := false
	for _, s := range l.Seasons {
		if s.Current {
			return s, true
		}
		if !found || s.Year > latest.Year {
			latest = s
			found = true
		}
	}

	return latest, found
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Type != TypeLeague && l.Type != TypeCup {
		return fmt.Errorf("invalid league type: %s", l.Type)
	}

	return nil
}
