package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/league-simulator/internal/domain/team"
	qb "github.com/riskibarqy/league-simulator/internal/platform/querybuilder"
)

const teamColumns = "id, name, offense, defense, points, wins, draws, losses, goals_for, goals_against, form, budget, roster, updated_at"

const teamUpsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	offense = EXCLUDED.offense,
	defense = EXCLUDED.defense,
	points = EXCLUDED.points,
	wins = EXCLUDED.wins,
	draws = EXCLUDED.draws,
	losses = EXCLUDED.losses,
	goals_for = EXCLUDED.goals_for,
	goals_against = EXCLUDED.goals_against,
	form = EXCLUDED.form,
	budget = EXCLUDED.budget,
	roster = EXCLUDED.roster,
	updated_at = EXCLUDED.updated_at`

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns).From("teams").OrderBy("name").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns).From("teams").
		Where(qb.Eq("id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, errors.Wrap(err, "build select team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, errors.Wrapf(err, "select team %s", teamID)
	}

	item, err := row.toDomain()
	if err != nil {
		return team.Team{}, false, err
	}
	return item, true, nil
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.InsertInto("teams").
		Columns("id", "name", "offense", "defense", "points", "wins", "draws", "losses",
			"goals_for", "goals_against", "form", "budget", "roster", "updated_at").
		Suffix(teamUpsertSuffix)

	now := time.Now().UTC()
	for _, item := range items {
		row, err := teamFromDomain(item)
		if err != nil {
			return err
		}
		builder.Values(row.ID, row.Name, row.Offense, row.Defense, row.Points, row.Wins,
			row.Draws, row.Losses, row.GoalsFor, row.GoalsAgainst, row.Form, row.Budget,
			row.Roster, now)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return errors.Wrap(err, "build upsert teams query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "upsert teams")
	}
	return nil
}
