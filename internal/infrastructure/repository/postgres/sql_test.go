package postgres

import (
	"database/sql"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches sql.ErrNoRows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("matches wrapped ErrNoRows", func(t *testing.T) {
		if !isNotFound(errors.Wrap(sql.ErrNoRows, "load team")) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(errors.New("connection refused")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestTeamModelConversion(t *testing.T) {
	form, err := team.ParseForm("WWDL")
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	item := team.Team{
		ID:       "liverpool",
		Name:     "Liverpool",
		Offense:  82.9,
		Defense:  99.0,
		Points:   7,
		Wins:     2,
		Draws:    1,
		Losses:   1,
		GoalsFor: 6, GoalsAgainst: 3,
		Form:   form,
		Budget: 120,
		Roster: []string{"p1", "p2"},
	}

	row, err := teamFromDomain(item)
	if err != nil {
		t.Fatalf("to row: %v", err)
	}
	if row.Form != "WWDL" {
		t.Fatalf("form not encoded: %q", row.Form)
	}
	if len(row.Roster) == 0 {
		t.Fatalf("roster not encoded")
	}

	back, err := row.toDomain()
	if err != nil {
		t.Fatalf("to domain: %v", err)
	}
	if back.Form.String() != "WWDL" {
		t.Fatalf("form lost in round trip: %q", back.Form.String())
	}
	if len(back.Roster) != 2 || back.Roster[0] != "p1" {
		t.Fatalf("roster lost in round trip: %v", back.Roster)
	}
	if back.Points != 7 || back.Budget != 120 {
		t.Fatalf("counters lost in round trip: %+v", back)
	}
}

func TestTeamModelRejectsCorruptForm(t *testing.T) {
	row := teamTableModel{ID: "x", Form: "WXZ"}
	if _, err := row.toDomain(); err == nil {
		t.Fatalf("expected error for corrupt form column")
	}
}

func TestFixtureModelNullScores(t *testing.T) {
	unplayed := fixtureFromDomain(fixture.Fixture{ID: "f1", SeasonID: 1, Gameweek: 1, HomeID: "a", AwayID: "b"})
	if unplayed.HomeGoals.Valid || unplayed.AwayGoals.Valid {
		t.Fatalf("unplayed fixture should carry NULL scores: %+v", unplayed)
	}
	if got := unplayed.toDomain(); got.HomeGoals != nil || got.AwayGoals != nil {
		t.Fatalf("NULL scores should map to nil pointers: %+v", got)
	}

	hg, ag := 2, 1
	played := fixtureFromDomain(fixture.Fixture{
		ID: "f2", SeasonID: 1, Gameweek: 1, HomeID: "a", AwayID: "b",
		HomeGoals: &hg, AwayGoals: &ag, Played: true,
	})
	if !played.HomeGoals.Valid || played.HomeGoals.Int64 != 2 {
		t.Fatalf("home goals not encoded: %+v", played.HomeGoals)
	}
	back := played.toDomain()
	if back.HomeGoals == nil || *back.HomeGoals != 2 || *back.AwayGoals != 1 {
		t.Fatalf("scores lost in round trip: %+v", back)
	}
}
