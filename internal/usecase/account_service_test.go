package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rmarques/futstats/internal/domain/account"
	"github.com/rmarques/futstats/internal/infrastructure/accountstore"
	catalog "github.com/rmarques/futstats/internal/infrastructure/catalog/memory"
	"github.com/rmarques/futstats/internal/infrastructure/kvstore"
	"github.com/rmarques/futstats/internal/platform/id"
	"github.com/rmarques/futstats/internal/platform/logging"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	return NewAccountService(
		accountstore.New(kvstore.NewMemory()),
		id.NewUUIDGenerator(),
		catalog.NewTeamRepository(catalog.SeedTeams()),
		catalog.NewLeagueRepository(catalog.SeedLeagues()),
		catalog.NewPlayerRepository(catalog.SeedPlayers()),
		logging.NewNop(),
		0,
	)
}

func TestAccountService_SignUpSignOutSignInRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	created, token, err := svc.SignUp(ctx, "Rafael", "Rafael@Example.com", "futstats123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PasswordHash != "" {
		t.Fatal("public account view must not carry the password hash")
	}
	if created.Email != "rafael@example.com" {
		t.Fatalf("expected normalized email, got=%q", created.Email)
	}

	if err := svc.SignOut(ctx, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Verify(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected signed-out token rejected, got=%v", err)
	}

	again, token2, err := svc.SignIn(ctx, "rafael@example.com", "futstats123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != created.ID {
		t.Fatalf("expected same account across sessions, got=%q and %q", created.ID, again.ID)
	}
	if len(again.Favorites.Teams)+len(again.Favorites.Leagues)+len(again.Favorites.Players) != 0 {
		t.Fatal("fresh account must have empty favorites")
	}

	verified, err := svc.Verify(ctx, token2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verified.ID != created.ID {
		t.Fatalf("expected verify to resolve the account, got=%q", verified.ID)
	}
}

func TestAccountService_SignUpRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "Rafael", "rafael@example.com", "futstats123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, err := svc.SignUp(ctx, "Other", "RAFAEL@example.com", "different1")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for case-insensitive duplicate, got=%v", err)
	}
}

func TestAccountService_SignInRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "Rafael", "rafael@example.com", "futstats123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := svc.SignIn(ctx, "rafael@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got=%v", err)
	}
	if _, _, err := svc.SignIn(ctx, "nobody@example.com", "futstats123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected unknown email to be indistinguishable, got=%v", err)
	}
}

func TestAccountService_SignUpValidation(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"blank name", "  ", "a@b.com", "futstats123"},
		{"malformed email", "Rafael", "not-an-email", "futstats123"},
		{"short password", "Rafael", "a@b.com", "abc"},
	}
	for _, tc := range cases {
		if _, _, err := svc.SignUp(ctx, tc.userName, tc.email, tc.password); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got=%v", tc.name, err)
		}
	}
}

func TestAccountService_ToggleFavoriteIsAnInvolution(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	_, token, err := svc.SignUp(ctx, "Rafael", "rafael@example.com", "futstats123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	added, err := svc.ToggleFavorite(ctx, token, account.CategoryTeams, catalog.TeamIDFlamengo)
	if err != nil || !added {
		t.Fatalf("expected first toggle to add, added=%v err=%v", added, err)
	}

	isFav, err := svc.IsFavorite(ctx, token, account.CategoryTeams, catalog.TeamIDFlamengo)
	if err != nil || !isFav {
		t.Fatalf("expected favorite after toggle, isFav=%v err=%v", isFav, err)
	}

	// Toggling again with the same id removes it and never duplicates.
	added, err = svc.ToggleFavorite(ctx, token, account.CategoryTeams, catalog.TeamIDFlamengo)
	if err != nil || added {
		t.Fatalf("expected second toggle to remove, added=%v err=%v", added, err)
	}

	favorites, err := svc.Favorites(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(favorites.Teams) != 0 {
		t.Fatalf("expected empty team favorites after involution, got=%d", len(favorites.Teams))
	}
}

func TestAccountService_ToggleFavoriteAcrossCategories(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	_, token, err := svc.SignUp(ctx, "Rafael", "rafael@example.com", "futstats123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ToggleFavorite(ctx, token, account.CategoryLeagues, catalog.LeagueIDSerieA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ToggleFavorite(ctx, token, account.CategoryPlayers, 276); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	favorites, err := svc.Favorites(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(favorites.Leagues) != 1 || len(favorites.Players) != 1 {
		t.Fatalf("expected one favorite per category, got=%+v", favorites)
	}

	if _, err := svc.ToggleFavorite(ctx, token, account.CategoryTeams, 999999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got=%v", err)
	}
	if _, err := svc.ToggleFavorite(ctx, token, account.Category("stadiums"), 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown category, got=%v", err)
	}
}

func TestAccountService_IsFavoriteIsFalseWhenSignedOut(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	isFav, err := svc.IsFavorite(ctx, "no-such-token", account.CategoryTeams, catalog.TeamIDFlamengo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isFav {
		t.Fatal("anonymous visitors have no favorites")
	}
}

func TestAccountService_ExpiredSessionIsRejected(t *testing.T) {
	t.Parallel()

	svc := newAccountService(t)
	ctx := context.Background()

	_, token, err := svc.SignUp(ctx, "Rafael", "rafael@example.com", "futstats123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.now = func() time.Time {
		return time.Now().Add(DefaultSessionTTL + time.Hour)
	}

	if _, err := svc.Verify(ctx, token); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got=%v", err)
	}

	isFav, err := svc.IsFavorite(ctx, token, account.CategoryTeams, catalog.TeamIDFlamengo)
	if err != nil || isFav {
		t.Fatalf("expired session must answer no favorites, isFav=%v err=%v", isFav, err)
	}
}
