// Package accountstore persists accounts and sessions as JSON documents in
// a key-value store, one key per collection.
package accountstore

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"

	"github.com/rmarques/futstats/internal/domain/account"
	"github.com/rmarques/futstats/internal/infrastructure/kvstore"
)

const (
	keyAccounts = "users"
	keySessions = "sessions"
)

type Store struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

func (s *Store) LoadAccounts(ctx context.Context) ([]account.Account, error) {
	raw, found, err := s.kv.Get(ctx, keyAccounts)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if !found {
		return []account.Account{}, nil
	}

	var accounts []account.Account
	if err := sonic.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}

	return accounts, nil
}

func (s *Store) SaveAccounts(ctx context.Context, accounts []account.Account) error {
	raw, err := sonic.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := s.kv.Set(ctx, keyAccounts, raw); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	return nil
}

func (s *Store) LoadSessions(ctx context.Context) ([]account.Session, error) {
	raw, found, err := s.kv.Get(ctx, keySessions)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if !found {
		return []account.Session{}, nil
	}

	var sessions []account.Session
	if err := sonic.Unmarshal(raw, &sessions); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}

	return sessions, nil
}

func (s *Store) SaveSessions(ctx context.Context, sessions []account.Session) error {
	raw, err := sonic.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}
	if err := s.kv.Set(ctx, keySessions, raw); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	return nil
}
