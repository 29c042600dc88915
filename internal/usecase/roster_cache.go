package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
)

// RosterCache holds the live player working set for a running season.
// Loaded once at season start; the match engine mutates the cached
// players directly and they are flushed to the store at settlement.
type RosterCache struct {
	mu     sync.RWMutex
	byTeam map[string][]*player.Player
}

func NewRosterCache() *RosterCache {
	return &RosterCache{byTeam: make(map[string][]*player.Player)}
}

// Reset drops all cached rosters.
func (c *RosterCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byTeam = make(map[string][]*player.Player)
}

// Load copies players into the cache under teamID, replacing any
// previous roster for that team.
func (c *RosterCache) Load(teamID string, players []player.Player) {
	refs := make([]*player.Player, len(players))
	for i := range players {
		p := players[i]
		refs[i] = &p
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byTeam[teamID] = refs
}

// PlayersOf implements RosterProvider.
func (c *RosterCache) PlayersOf(_ context.Context, teamID string) ([]*player.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	roster, ok := c.byTeam[teamID]
	if !ok {
		return nil, fmt.Errorf("%w: no roster cached for team %s", ErrNotFound, teamID)
	}
	return roster, nil
}

// All returns every cached player across all teams.
func (c *RosterCache) All() []*player.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*player.Player, 0)
	for _, roster := range c.byTeam {
		out = append(out, roster...)
	}
	return out
}
