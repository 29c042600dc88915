package usecase

import (
	"testing"

	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

func TestTableOrdering(t *testing.T) {
	svc := NewStandingService()
	teams := []*team.Team{
		{ID: "c", Name: "Charlie", Points: 10, GoalsFor: 12, GoalsAgainst: 8},
		{ID: "a", Name: "Alpha", Points: 12, GoalsFor: 10, GoalsAgainst: 5},
		{ID: "d", Name: "Delta", Points: 10, GoalsFor: 14, GoalsAgainst: 10},
		{ID: "b", Name: "Bravo", Points: 10, GoalsFor: 12, GoalsAgainst: 8},
	}

	rows := svc.Table(teams)

	wantOrder := []string{"a", "d", "b", "c"}
	for i, want := range wantOrder {
		if rows[i].TeamID != want {
			t.Fatalf("position %d: got=%s want=%s", i+1, rows[i].TeamID, want)
		}
		if rows[i].Position != i+1 {
			t.Fatalf("row %s: unexpected position %d", rows[i].TeamID, rows[i].Position)
		}
	}
}

func TestTableGoalDifferenceBeatsGoalsFor(t *testing.T) {
	svc := NewStandingService()
	teams := []*team.Team{
		{ID: "shooty", Name: "Shooty", Points: 9, GoalsFor: 20, GoalsAgainst: 18},
		{ID: "solid", Name: "Solid", Points: 9, GoalsFor: 8, GoalsAgainst: 2},
	}

	rows := svc.Table(teams)
	if rows[0].TeamID != "solid" {
		t.Fatalf("goal difference should break the tie first: got=%s", rows[0].TeamID)
	}
}

func TestTableIsStableAcrossCalls(t *testing.T) {
	svc := NewStandingService()
	teams := []*team.Team{
		{ID: "b", Name: "Same", Points: 6, GoalsFor: 5, GoalsAgainst: 5},
		{ID: "a", Name: "Same", Points: 6, GoalsFor: 5, GoalsAgainst: 5},
	}

	first := svc.Table(teams)
	second := svc.Table(teams)
	for i := range first {
		if first[i].TeamID != second[i].TeamID {
			t.Fatalf("table order changed between calls at row %d", i)
		}
	}
}

func TestSnapshotIsDetachedFromLiveTeams(t *testing.T) {
	svc := NewStandingService()
	tm := &team.Team{ID: "a", Name: "Alpha", Points: 3, GoalsFor: 2}

	snap := svc.Snapshot(1, 5, []*team.Team{tm})
	if snap.SeasonID != 1 || snap.Gameweek != 5 {
		t.Fatalf("unexpected snapshot identity: %+v", snap)
	}
	if snap.Rows[0].Points != 3 {
		t.Fatalf("unexpected snapshot points: %d", snap.Rows[0].Points)
	}

	tm.Points = 99
	if snap.Rows[0].Points != 3 {
		t.Fatalf("snapshot mutated by live team update: %d", snap.Rows[0].Points)
	}
}
