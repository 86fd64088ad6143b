package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rmarques/futstats/internal/domain/account"
	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/team"
	"github.com/rmarques/futstats/internal/platform/id"
	"github.com/rmarques/futstats/internal/platform/logging"
)

const (
	minPasswordLength = 6
	DefaultSessionTTL = 30 * 24 * time.Hour
)

// AccountService owns sign-up, sign-in and favorites. Every read-modify-write
// cycle over the account store runs under one mutex, so concurrent favorite
// toggles on different categories can never clobber each other's writes.
type AccountService struct {
	store      account.Store
	ids        id.Generator
	teams      team.Repository
	leagues    league.Repository
	players    player.Repository
	logger     *logging.Logger
	sessionTTL time.Duration

	mu  sync.Mutex
	now func() time.Time
}

func NewAccountService(store account.Store, ids id.Generator, teams team.Repository, leagues league.Repository, players player.Repository, logger *logging.Logger, sessionTTL time.Duration) *AccountService {
	if logger == nil {
		logger = logging.Default()
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AccountService{
		store:      store,
		ids:        ids,
		teams:      teams,
		leagues:    leagues,
		players:    players,
		logger:     logger,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// SignUp registers a new account and opens a session for it. Emails are
// unique case-insensitively; passwords are stored as bcrypt hashes only.
func (s *AccountService) SignUp(ctx context.Context, name, email, password string) (account.Account, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.SignUp")
	defer span.End()

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" {
		return account.Account{}, "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateEmail(email); err != nil {
		return account.Account{}, "", err
	}
	if len(password) < minPasswordLength {
		return account.Account{}, "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, "", fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.store.LoadAccounts(ctx)
	if err != nil {
		return account.Account{}, "", fmt.Errorf("load accounts: %w", err)
	}
	for _, existing := range accounts {
		if normalizeEmail(existing.Email) == email {
			return account.Account{}, "", fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}
	}

	accountID, err := s.ids.NewID()
	if err != nil {
		return account.Account{}, "", fmt.Errorf("generate account id: %w", err)
	}

	created := account.Account{
		ID:        accountID,
		Name:      name,
		Email:     email,
		CreatedAt: s.now().UTC(),
	}
	created.PasswordHash = string(hash)

	if err := s.store.SaveAccounts(ctx, append(accounts, created)); err != nil {
		return account.Account{}, "", fmt.Errorf("save accounts: %w", err)
	}

	token, err := s.openSessionLocked(ctx, created.ID)
	if err != nil {
		return account.Account{}, "", err
	}

	s.logger.InfoContext(ctx, "account registered", "account_id", created.ID)
	return created.Public(), token, nil
}

// SignIn verifies credentials and opens a fresh session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (account.Account, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.SignIn")
	defer span.End()

	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return account.Account{}, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.store.LoadAccounts(ctx)
	if err != nil {
		return account.Account{}, "", fmt.Errorf("load accounts: %w", err)
	}

	var matched *account.Account
	for idx := range accounts {
		if normalizeEmail(accounts[idx].Email) == email {
			matched = &accounts[idx]
			break
		}
	}
	if matched == nil {
		return account.Account{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(matched.PasswordHash), []byte(password)); err != nil {
		return account.Account{}, "", ErrInvalidCredentials
	}

	token, err := s.openSessionLocked(ctx, matched.ID)
	if err != nil {
		return account.Account{}, "", err
	}

	return matched.Public(), token, nil
}

// SignOut invalidates a session token. Signing out an already invalid token
// is a no-op.
func (s *AccountService) SignOut(ctx context.Context, token string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.SignOut")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: session token is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.store.LoadSessions(ctx)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	kept := make([]account.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.Token == token || s.expired(session) {
			continue
		}
		kept = append(kept, session)
	}
	if len(kept) == len(sessions) {
		return nil
	}

	if err := s.store.SaveSessions(ctx, kept); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	return nil
}

// Verify resolves a session token to its account. It satisfies the HTTP
// middleware's TokenVerifier contract.
func (s *AccountService) Verify(ctx context.Context, token string) (account.Account, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Verify")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return account.Account{}, ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.verifyLocked(ctx, token)
}

// Me returns the public view of the signed-in account.
func (s *AccountService) Me(ctx context.Context, token string) (account.Account, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Me")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.verifyLocked(ctx, token)
	if err != nil {
		return account.Account{}, err
	}

	return current.Public(), nil
}

// Favorites returns the signed-in account's favorite lists.
func (s *AccountService) Favorites(ctx context.Context, token string) (account.Favorites, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Favorites")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.verifyLocked(ctx, token)
	if err != nil {
		return account.Favorites{}, err
	}

	return current.Favorites, nil
}

// ToggleFavorite adds the entity to the category list when absent and
// removes it when present. The stored entry is a snapshot resolved from the
// team/league/player sources at toggle time. Returns true when the entity
// was added.
func (s *AccountService) ToggleFavorite(ctx context.Context, token string, category account.Category, entityID int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.ToggleFavorite")
	defer span.End()

	if entityID <= 0 {
		return false, fmt.Errorf("%w: entity id must be greater than zero", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.verifyLocked(ctx, token)
	if err != nil {
		return false, err
	}

	accounts, err := s.store.LoadAccounts(ctx)
	if err != nil {
		return false, fmt.Errorf("load accounts: %w", err)
	}

	var stored *account.Account
	for idx := range accounts {
		if accounts[idx].ID == current.ID {
			stored = &accounts[idx]
			break
		}
	}
	if stored == nil {
		return false, fmt.Errorf("%w: account=%s", ErrNotFound, current.ID)
	}

	var added bool
	switch category {
	case account.CategoryTeams:
		item, found, err := s.teams.GetByID(ctx, entityID)
		if err != nil {
			return false, fmt.Errorf("get team: %w", err)
		}
		if !found {
			return false, fmt.Errorf("%w: team=%d", ErrNotFound, entityID)
		}
		added = stored.Favorites.ToggleTeam(item)
	case account.CategoryLeagues:
		item, found, err := s.leagues.GetByID(ctx, entityID)
		if err != nil {
			return false, fmt.Errorf("get league: %w", err)
		}
		if !found {
			return false, fmt.Errorf("%w: league=%d", ErrNotFound, entityID)
		}
		added = stored.Favorites.ToggleLeague(item)
	case account.CategoryPlayers:
		item, found, err := s.players.GetByID(ctx, entityID)
		if err != nil {
			return false, fmt.Errorf("get player: %w", err)
		}
		if !found {
			return false, fmt.Errorf("%w: player=%d", ErrNotFound, entityID)
		}
		added = stored.Favorites.TogglePlayer(item)
	default:
		return false, fmt.Errorf("%w: unknown favorite category %q", ErrInvalidInput, category)
	}

	if err := s.store.SaveAccounts(ctx, accounts); err != nil {
		return false, fmt.Errorf("save accounts: %w", err)
	}

	return added, nil
}

// IsFavorite reports whether the entity is in the category list. Missing or
// expired sessions answer false rather than failing: an anonymous visitor
// simply has no favorites.
func (s *AccountService) IsFavorite(ctx context.Context, token string, category account.Category, entityID int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.IsFavorite")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.verifyLocked(ctx, token)
	if err != nil {
		if isAuthError(err) {
			return false, nil
		}
		return false, err
	}

	return current.Favorites.IsFavorite(category, entityID), nil
}

func (s *AccountService) verifyLocked(ctx context.Context, token string) (account.Account, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return account.Account{}, ErrUnauthorized
	}

	sessions, err := s.store.LoadSessions(ctx)
	if err != nil {
		return account.Account{}, fmt.Errorf("load sessions: %w", err)
	}

	var matched *account.Session
	for idx := range sessions {
		if sessions[idx].Token == token {
			matched = &sessions[idx]
			break
		}
	}
	if matched == nil {
		return account.Account{}, ErrUnauthorized
	}
	if s.expired(*matched) {
		return account.Account{}, ErrSessionExpired
	}

	accounts, err := s.store.LoadAccounts(ctx)
	if err != nil {
		return account.Account{}, fmt.Errorf("load accounts: %w", err)
	}
	for _, item := range accounts {
		if item.ID == matched.AccountID {
			return item, nil
		}
	}

	return account.Account{}, ErrUnauthorized
}

// openSessionLocked issues a token and prunes expired sessions in the same
// write. Caller holds s.mu.
func (s *AccountService) openSessionLocked(ctx context.Context, accountID string) (string, error) {
	token, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	sessions, err := s.store.LoadSessions(ctx)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}

	kept := make([]account.Session, 0, len(sessions)+1)
	for _, session := range sessions {
		if s.expired(session) {
			continue
		}
		kept = append(kept, session)
	}

	now := s.now().UTC()
	kept = append(kept, account.Session{
		Token:     token,
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	})

	if err := s.store.SaveSessions(ctx, kept); err != nil {
		return "", fmt.Errorf("save sessions: %w", err)
	}

	return token, nil
}

func (s *AccountService) expired(session account.Session) bool {
	return !session.ExpiresAt.After(s.now().UTC())
}

func isAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrSessionExpired)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("%w: malformed email address", ErrInvalidInput)
	}
	return nil
}
