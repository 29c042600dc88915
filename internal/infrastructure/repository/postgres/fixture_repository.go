package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	qb "github.com/riskibarqy/league-simulator/internal/platform/querybuilder"
)

const fixtureColumns = "id, season_id, gameweek, home_id, away_id, home_goals, away_goals, played, updated_at"

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, seasonID int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select(fixtureColumns).From("fixtures").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("gameweek", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select fixtures query")
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select fixtures for season %d", seasonID)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ReplaceSeason swaps a season's fixture list atomically: old rows go,
// the fresh schedule lands in one transaction.
func (r *FixtureRepository) ReplaceSeason(ctx context.Context, seasonID int, fixtures []fixture.Fixture) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin replace season tx")
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("fixtures").
		Where(qb.Eq("season_id", seasonID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete fixtures query")
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return errors.Wrapf(err, "delete fixtures for season %d", seasonID)
	}

	if len(fixtures) > 0 {
		builder := qb.InsertInto("fixtures").
			Columns("id", "season_id", "gameweek", "home_id", "away_id",
				"home_goals", "away_goals", "played", "updated_at")

		now := time.Now().UTC()
		for _, item := range fixtures {
			row := fixtureFromDomain(item)
			builder.Values(row.ID, row.SeasonID, row.Gameweek, row.HomeID, row.AwayID,
				row.HomeGoals, row.AwayGoals, row.Played, now)
		}

		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return errors.Wrap(err, "build insert fixtures query")
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return errors.Wrapf(err, "insert fixtures for season %d", seasonID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit replace season tx")
	}
	return nil
}

func (r *FixtureRepository) UpdateScores(ctx context.Context, fixtures []fixture.Fixture) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin update scores tx")
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for _, item := range fixtures {
		row := fixtureFromDomain(item)
		query, args, err := qb.Update("fixtures").
			Set("home_goals", row.HomeGoals).
			Set("away_goals", row.AwayGoals).
			Set("played", row.Played).
			Set("updated_at", now).
			Where(qb.Eq("id", row.ID)).
			ToSQL()
		if err != nil {
			return errors.Wrap(err, "build update fixture query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "update fixture %s", row.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit update scores tx")
	}
	return nil
}
