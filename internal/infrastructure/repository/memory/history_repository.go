package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-simulator/internal/domain/season"
)

type HistoryRepository struct {
	mu                sync.RWMutex
	snapshotsBySeason map[int][]season.Snapshot
	latestSeason      int
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{snapshotsBySeason: make(map[int][]season.Snapshot)}
}

func (r *HistoryRepository) Append(_ context.Context, snapshot season.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshotsBySeason[snapshot.SeasonID] = append(r.snapshotsBySeason[snapshot.SeasonID], snapshot)
	if snapshot.SeasonID > r.latestSeason {
		r.latestSeason = snapshot.SeasonID
	}
	return nil
}

func (r *HistoryRepository) ListBySeason(_ context.Context, seasonID int) ([]season.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.snapshotsBySeason[seasonID]
	out := make([]season.Snapshot, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}

func (r *HistoryRepository) LatestSeasonID(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latestSeason, nil
}
