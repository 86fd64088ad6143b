package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/rmarques/futstats/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)
	return &TeamRepository{teams: out}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}

// Search matches case-insensitively on name and short code. Seed order is
// preserved; ranking belongs to the service layer.
func (r *TeamRepository) Search(_ context.Context, query string) ([]team.Team, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []team.Team{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, 8)
	for _, item := range r.teams {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.EqualFold(item.Code, needle) {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) UpsertTeams(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if item.ID <= 0 || strings.TrimSpace(item.Name) == "" {
			continue
		}

		updated := false
		for idx := range r.teams {
			if r.teams[idx].ID == item.ID {
				r.teams[idx] = item
				updated = true
				break
			}
		}
		if !updated {
			r.teams = append(r.teams, item)
		}
	}

	return nil
}
