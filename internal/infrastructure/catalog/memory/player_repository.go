package memory

import (
	"context"
	"sync"

	"github.com/rmarques/futstats/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	playersByTeam map[int64][]player.Player
}

func NewPlayerRepository(playersByTeam map[int64][]player.Player) *PlayerRepository {
	out := make(map[int64][]player.Player, len(playersByTeam))
	for teamID, players := range playersByTeam {
		rows := make([]player.Player, 0, len(players))
		rows = append(rows, players...)
		out[teamID] = rows
	}
	return &PlayerRepository{playersByTeam: out}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByTeam[teamID]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, players := range r.playersByTeam {
		for _, item := range players {
			if item.ID == playerID {
				return item, true, nil
			}
		}
	}

	return player.Player{}, false, nil
}
