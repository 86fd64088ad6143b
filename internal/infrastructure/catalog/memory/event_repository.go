package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rmarques/futstats/internal/domain/event"
)

type EventRepository struct {
	mu     sync.RWMutex
	events []event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	out := make([]event.Event, 0, len(events))
	out = append(out, events...)
	return &EventRepository{events: out}
}

func (r *EventRepository) ListByFixture(_ context.Context, fixtureID int64) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, 8)
	for _, item := range r.events {
		if item.FixtureID == fixtureID {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].ExtraMinute < out[j].ExtraMinute
	})

	return out, nil
}
