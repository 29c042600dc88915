package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID        string        `db:"id"`
	SeasonID  int           `db:"season_id"`
	Gameweek  int           `db:"gameweek"`
	HomeID    string        `db:"home_id"`
	AwayID    string        `db:"away_id"`
	HomeGoals sql.NullInt64 `db:"home_goals"`
	AwayGoals sql.NullInt64 `db:"away_goals"`
	Played    bool          `db:"played"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	out := fixture.Fixture{
		ID:       m.ID,
		SeasonID: m.SeasonID,
		Gameweek: m.Gameweek,
		HomeID:   m.HomeID,
		AwayID:   m.AwayID,
		Played:   m.Played,
	}
	if m.HomeGoals.Valid {
		v := int(m.HomeGoals.Int64)
		out.HomeGoals = &v
	}
	if m.AwayGoals.Valid {
		v := int(m.AwayGoals.Int64)
		out.AwayGoals = &v
	}
	return out
}

func fixtureFromDomain(item fixture.Fixture) fixtureTableModel {
	row := fixtureTableModel{
		ID:       item.ID,
		SeasonID: item.SeasonID,
		Gameweek: item.Gameweek,
		HomeID:   item.HomeID,
		AwayID:   item.AwayID,
		Played:   item.Played,
	}
	if item.HomeGoals != nil {
		row.HomeGoals = sql.NullInt64{Int64: int64(*item.HomeGoals), Valid: true}
	}
	if item.AwayGoals != nil {
		row.AwayGoals = sql.NullInt64{Int64: int64(*item.AwayGoals), Valid: true}
	}
	return row
}
