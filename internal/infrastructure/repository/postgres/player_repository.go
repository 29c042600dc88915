package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
	qb "github.com/riskibarqy/league-simulator/internal/platform/querybuilder"
)

const playerColumns = "id, team_id, name, age, nationality, position, current_ability, price, attributes, stats, updated_at"

const playerUpsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	team_id = EXCLUDED.team_id,
	name = EXCLUDED.name,
	age = EXCLUDED.age,
	nationality = EXCLUDED.nationality,
	position = EXCLUDED.position,
	current_ability = EXCLUDED.current_ability,
	price = EXCLUDED.price,
	attributes = EXCLUDED.attributes,
	stats = EXCLUDED.stats,
	updated_at = EXCLUDED.updated_at`

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns).From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players by team query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select players for team %s", teamID)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns).From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build select player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrapf(err, "select player %s", playerID)
	}

	item, err := row.toDomain()
	if err != nil {
		return player.Player{}, false, err
	}
	return item, true, nil
}

func (r *PlayerRepository) UpsertPlayers(ctx context.Context, items []player.Player) error {
	if len(items) == 0 {
		return nil
	}

	// Large squads land in chunks to keep bind-arg counts bounded.
	const chunkSize = 100
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		if err := r.upsertChunk(ctx, items[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PlayerRepository) upsertChunk(ctx context.Context, items []player.Player) error {
	builder := qb.InsertInto("players").
		Columns("id", "team_id", "name", "age", "nationality", "position",
			"current_ability", "price", "attributes", "stats", "updated_at").
		Suffix(playerUpsertSuffix)

	now := time.Now().UTC()
	for _, item := range items {
		row, err := playerFromDomain(item)
		if err != nil {
			return err
		}
		builder.Values(row.ID, row.TeamID, row.Name, row.Age, row.Nationality, row.Position,
			row.CurrentAbility, row.Price, row.Attributes, row.Stats, now)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return errors.Wrap(err, "build upsert players query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "upsert players")
	}
	return nil
}
