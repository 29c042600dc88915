package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

type TeamRepository struct {
	mu      sync.RWMutex
	teams   map[string]team.Team
	ordered []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{teams: make(map[string]team.Team, len(teams))}
	for _, item := range teams {
		if _, ok := r.teams[item.ID]; !ok {
			r.ordered = append(r.ordered, item.ID)
		}
		r.teams[item.ID] = item
	}
	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, r.teams[id])
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) UpsertTeams(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		teamID := strings.TrimSpace(item.ID)
		if teamID == "" {
			continue
		}
		if _, ok := r.teams[teamID]; !ok {
			r.ordered = append(r.ordered, teamID)
		}
		r.teams[teamID] = item
	}
	return nil
}
