package team

import "context"

// Repository exposes read access to the seeded team catalog.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	Search(ctx context.Context, query string) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
}
