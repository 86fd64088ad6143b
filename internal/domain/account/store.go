package account

import (
	"context"
	"time"
)

// Session binds an opaque token to a registered account.
type Session struct {
	Token     string    `json:"token"`
	AccountID string    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the persistence port for accounts and sessions. Implementations
// are plain readers/writers; serialization of concurrent read-modify-write
// cycles is the caller's job.
type Store interface {
	LoadAccounts(ctx context.Context) ([]Account, error)
	SaveAccounts(ctx context.Context, accounts []Account) error
	LoadSessions(ctx context.Context) ([]Session, error)
	SaveSessions(ctx context.Context, sessions []Session) error
}
