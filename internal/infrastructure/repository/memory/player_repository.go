package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	playersByTeam map[string][]player.Player
	teamByPlayer  map[string]string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		playersByTeam: make(map[string][]player.Player),
		teamByPlayer:  make(map[string]string),
	}
	for _, item := range players {
		r.playersByTeam[item.TeamID] = append(r.playersByTeam[item.TeamID], item)
		r.teamByPlayer[item.ID] = item.TeamID
	}
	return r
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roster := r.playersByTeam[teamID]
	out := make([]player.Player, 0, len(roster))
	out = append(out, roster...)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teamID, ok := r.teamByPlayer[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	for _, item := range r.playersByTeam[teamID] {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) UpsertPlayers(_ context.Context, items []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		playerID := strings.TrimSpace(item.ID)
		if playerID == "" {
			continue
		}

		// Moving a player between teams drops the stale roster entry first.
		if prevTeam, ok := r.teamByPlayer[playerID]; ok && prevTeam != item.TeamID {
			roster := r.playersByTeam[prevTeam]
			for idx := range roster {
				if roster[idx].ID == playerID {
					r.playersByTeam[prevTeam] = append(roster[:idx], roster[idx+1:]...)
					break
				}
			}
		}

		roster := r.playersByTeam[item.TeamID]
		updated := false
		for idx := range roster {
			if roster[idx].ID == playerID {
				roster[idx] = item
				updated = true
				break
			}
		}
		if !updated {
			roster = append(roster, item)
		}
		r.playersByTeam[item.TeamID] = roster
		r.teamByPlayer[playerID] = item.TeamID
	}
	return nil
}
