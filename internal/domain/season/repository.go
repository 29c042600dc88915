package season

import "context"

// HistoryRepository appends and replays per-gameweek table snapshots.
type HistoryRepository interface {
	Append(ctx context.Context, snapshot Snapshot) error
	ListBySeason(ctx context.Context, seasonID int) ([]Snapshot, error)
	LatestSeasonID(ctx context.Context) (int, error)
}
