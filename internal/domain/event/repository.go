package event

import "context"

type Repository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]Event, error)
}
