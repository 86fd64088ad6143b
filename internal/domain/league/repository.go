package league

import "context"

// Repository exposes read access to the seeded league catalog.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
}
