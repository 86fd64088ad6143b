package team

import "fmt"

// Team is a football club. Instances are immutable within a session and
// sourced from either the provider or the seed catalog.
type Team struct {
	ID      int64
	Name    string
	Code    string
	Country string
	Founded int
	LogoURL string
	Venue   string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
