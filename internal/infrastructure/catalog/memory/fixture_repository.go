package memory

import (
	"context"
	"sync"

	"github.com/rmarques/futstats/internal/domain/fixture"
)

type FixtureRepository struct {
	mu       sync.RWMutex
	fixtures []fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	out := make([]fixture.Fixture, 0, len(fixtures))
	out = append(out, fixtures...)
	return &FixtureRepository{fixtures: out}
}

func (r *FixtureRepository) ListLive(_ context.Context) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, 4)
	for _, item := range r.fixtures {
		if fixture.IsLive(item.Status) {
			out = append(out, item)
		}
	}

	return out, nil
}

// ListByDate matches on the UTC calendar day of kickoff. The date must be
// in YYYY-MM-DD form; callers validate before reaching the catalog.
func (r *FixtureRepository) ListByDate(_ context.Context, date string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, 4)
	for _, item := range r.fixtures {
		if item.KickoffAt.IsZero() {
			continue
		}
		if item.KickoffAt.UTC().Format("2006-01-02") == date {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.fixtures {
		if item.ID == fixtureID {
			return item, true, nil
		}
	}

	return fixture.Fixture{}, false, nil
}
