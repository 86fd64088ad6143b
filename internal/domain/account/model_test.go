package account

import (
	"testing"

	"github.com/rmarques/futstats/internal/domain/team"
)

func TestToggleTeam_IdempotentPair(t *testing.T) {
	t.Parallel()

	var favorites Favorites
	flamengo := team.Team{ID: 127, Name: "Flamengo", Code: "FLA", Country: "Brazil"}

	if added := favorites.ToggleTeam(flamengo); !added {
		t.Fatal("first toggle should add")
	}
	if !favorites.IsFavorite(CategoryTeams, 127) {
		t.Fatal("team should be favorite after first toggle")
	}

	if added := favorites.ToggleTeam(flamengo); added {
		t.Fatal("second toggle should remove")
	}
	if favorites.IsFavorite(CategoryTeams, 127) {
		t.Fatal("team should not be favorite after second toggle")
	}
	if len(favorites.Teams) != 0 {
		t.Fatalf("favorites list length = %d, want 0", len(favorites.Teams))
	}
}

func TestToggleTeam_UniqueByID(t *testing.T) {
	t.Parallel()

	var favorites Favorites
	favorites.ToggleTeam(team.Team{ID: 127, Name: "Flamengo"})
	// Same id with a refreshed snapshot removes instead of duplicating.
	favorites.ToggleTeam(team.Team{ID: 127, Name: "CR Flamengo", LogoURL: "https://example/fla.png"})

	if len(favorites.Teams) != 0 {
		t.Fatalf("favorites list length = %d, want 0", len(favorites.Teams))
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]Category{
		"teams":   CategoryTeams,
		" Leagues": CategoryLeagues,
		"PLAYERS": CategoryPlayers,
	} {
		got, err := ParseCategory(raw)
		if err != nil {
			t.Fatalf("ParseCategory(%q) error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseCategory(%q) = %q, want %q", raw, got, want)
		}
	}

	if _, err := ParseCategory("stadiums"); err == nil {
		t.Fatal("ParseCategory(\"stadiums\") should fail")
	}
}

func TestPublicStripsHash(t *testing.T) {
	t.Parallel()

	acct := Account{ID: "a1", Email: "ana@x.com", PasswordHash: "$2a$10$abc"}
	if got := acct.Public().PasswordHash; got != "" {
		t.Fatalf("Public() kept hash %q", got)
	}
	if acct.PasswordHash == "" {
		t.Fatal("Public() must not mutate the receiver")
	}
}
