package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/team"
)

// Category selects one of the three favorite lists.
type Category string

const (
	CategoryTeams   Category = "teams"
	CategoryLeagues Category = "leagues"
	CategoryPlayers Category = "players"
)

// ParseCategory validates a category string from the outside world.
func ParseCategory(value string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(value))) {
	case CategoryTeams:
		return CategoryTeams, nil
	case CategoryLeagues:
		return CategoryLeagues, nil
	case CategoryPlayers:
		return CategoryPlayers, nil
	default:
		return "", fmt.Errorf("unknown favorite category: %s", value)
	}
}

// Favorites holds the user-curated entity snapshots, partitioned by category.
// Entries are full denormalized records, not ids: screens render favorites
// without a re-fetch. Within each list the entity id is unique.
type Favorites struct {
	Teams   []team.Team     `json:"teams"`
	Leagues []league.League `json:"leagues"`
	Players []player.Player `json:"players"`
}

// Account is a registered user. PasswordHash is a bcrypt hash and never
// leaves the persistence layer.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Favorites    Favorites `json:"favorites"`
}

// Public returns a copy safe to expose outside the account store.
func (a Account) Public() Account {
	a.PasswordHash = ""
	return a
}

// IsFavorite reports whether an entity id is present in the category list.
func (f Favorites) IsFavorite(category Category, id int64) bool {
	switch category {
	case CategoryTeams:
		for _, item := range f.Teams {
			if item.ID == id {
				return true
			}
		}
	case CategoryLeagues:
		for _, item := range f.Leagues {
			if item.ID == id {
				return true
			}
		}
	case CategoryPlayers:
		for _, item := range f.Players {
			if item.ID == id {
				return true
			}
		}
	}

	return false
}

// ToggleTeam adds the snapshot when its id is absent and removes the entry
// with that id when present. Returns true when the entity ended up added.
func (f *Favorites) ToggleTeam(item team.Team) bool {
	for idx, existing := range f.Teams {
		if existing.ID == item.ID {
			f.Teams = append(f.Teams[:idx], f.Teams[idx+1:]...)
			return false
		}
	}
	f.Teams = append(f.Teams, item)
	return true
}

func (f *Favorites) ToggleLeague(item league.League) bool {
	for idx, existing := range f.Leagues {
		if existing.ID == item.ID {
			f.Leagues = append(f.Leagues[:idx], f.Leagues[idx+1:]...)
			return false
		}
	}
	f.Leagues = append(f.Leagues, item)
	return true
}

func (f *Favorites) TogglePlayer(item player.Player) bool {
	for idx, existing := range f.Players {
		if existing.ID == item.ID {
			f.Players = append(f.Players[:idx], f.Players[idx+1:]...)
			return false
		}
	}
	f.Players = append(f.Players, item)
	return true
}
