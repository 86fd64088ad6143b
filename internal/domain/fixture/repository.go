package fixture

import "context"

// Repository exposes read access to the seeded fixture catalog.
type Repository interface {
	ListLive(ctx context.Context) ([]Fixture, error)
	ListByDate(ctx context.Context, date string) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID int64) (Fixture, bool, error)
}
