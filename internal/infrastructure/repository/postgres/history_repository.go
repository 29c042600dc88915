package postgres

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/league-simulator/internal/domain/season"
	qb "github.com/riskibarqy/league-simulator/internal/platform/querybuilder"
)

type snapshotTableModel struct {
	SeasonID  int       `db:"season_id"`
	Gameweek  int       `db:"gameweek"`
	Rows      []byte    `db:"table_rows"`
	CreatedAt time.Time `db:"created_at"`
}

type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, snapshot season.Snapshot) error {
	rows, err := sonic.Marshal(snapshot.Rows)
	if err != nil {
		return errors.Wrapf(err, "encode snapshot rows for season %d gameweek %d",
			snapshot.SeasonID, snapshot.Gameweek)
	}

	query, args, err := qb.InsertInto("season_snapshots").
		Columns("season_id", "gameweek", "table_rows", "created_at").
		Values(snapshot.SeasonID, snapshot.Gameweek, rows, time.Now().UTC()).
		Suffix("ON CONFLICT (season_id, gameweek) DO UPDATE SET table_rows = EXCLUDED.table_rows").
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build insert snapshot query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert snapshot")
	}
	return nil
}

func (r *HistoryRepository) ListBySeason(ctx context.Context, seasonID int) ([]season.Snapshot, error) {
	query, args, err := qb.Select("season_id", "gameweek", "table_rows", "created_at").
		From("season_snapshots").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select snapshots query")
	}

	var models []snapshotTableModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select snapshots for season %d", seasonID)
	}

	out := make([]season.Snapshot, 0, len(models))
	for _, m := range models {
		var rows []season.TableRow
		if len(m.Rows) > 0 {
			if err := sonic.Unmarshal(m.Rows, &rows); err != nil {
				return nil, errors.Wrapf(err, "decode snapshot rows for season %d gameweek %d",
					m.SeasonID, m.Gameweek)
			}
		}
		out = append(out, season.Snapshot{
			SeasonID: m.SeasonID,
			Gameweek: m.Gameweek,
			Rows:     rows,
		})
	}
	return out, nil
}

func (r *HistoryRepository) LatestSeasonID(ctx context.Context) (int, error) {
	var latest int
	err := r.db.GetContext(ctx, &latest, "SELECT COALESCE(MAX(season_id), 0) FROM season_snapshots")
	if err != nil {
		return 0, errors.Wrap(err, "select latest season id")
	}
	return latest, nil
}
