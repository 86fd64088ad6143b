package memory

import (
	"context"
	"sync"

	"github.com/rmarques/futstats/internal/domain/scorer"
)

// ScorerRepository serves a single hand-authored chart regardless of league
// and season. It exists so a provider outage never leaves the scorer screen
// empty.
type ScorerRepository struct {
	mu      sync.RWMutex
	scorers []scorer.Scorer
}

func NewScorerRepository(scorers []scorer.Scorer) *ScorerRepository {
	out := make([]scorer.Scorer, 0, len(scorers))
	out = append(out, scorers...)
	return &ScorerRepository{scorers: out}
}

func (r *ScorerRepository) ListByLeagueSeason(_ context.Context, _ int64, _ int) ([]scorer.Scorer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scorer.Scorer, 0, len(r.scorers))
	out = append(out, r.scorers...)

	return out, nil
}
