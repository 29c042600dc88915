package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
)

type FixtureRepository struct {
	mu               sync.RWMutex
	fixturesBySeason map[int][]fixture.Fixture
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{fixturesBySeason: make(map[int][]fixture.Fixture)}
}

func (r *FixtureRepository) ListBySeason(_ context.Context, seasonID int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.fixturesBySeason[seasonID]
	out := make([]fixture.Fixture, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}

func (r *FixtureRepository) ReplaceSeason(_ context.Context, seasonID int, fixtures []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]fixture.Fixture, len(fixtures))
	copy(rows, fixtures)
	r.fixturesBySeason[seasonID] = rows
	return nil
}

func (r *FixtureRepository) UpdateScores(_ context.Context, fixtures []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range fixtures {
		rows := r.fixturesBySeason[item.SeasonID]
		for idx := range rows {
			if rows[idx].ID == item.ID {
				rows[idx] = item
				break
			}
		}
	}
	return nil
}
