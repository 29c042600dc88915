package team

import (
	"math"
	"testing"
)

func TestFormAppendCapsHistory(t *testing.T) {
	var f Form
	for _, r := range []Result{ResultWin, ResultWin, ResultDraw, ResultLoss, ResultWin, ResultLoss} {
		f = f.Append(r)
	}

	if got := f.String(); got != "WDLWL" {
		t.Fatalf("unexpected form: got=%q want=%q", got, "WDLWL")
	}
	if len(f) != FormLength {
		t.Fatalf("unexpected form length: got=%d want=%d", len(f), FormLength)
	}
}

func TestFormScoreAndFactor(t *testing.T) {
	tests := []struct {
		name   string
		form   string
		score  int
		factor float64
	}{
		{name: "empty is neutral", form: "", score: 0, factor: 1.0},
		{name: "all wins", form: "WWWWW", score: 10, factor: 1.10},
		{name: "all losses", form: "LLLLL", score: -5, factor: 0.95},
		{name: "mixed", form: "WDLWD", score: 3, factor: 1.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := ParseForm(tt.form)
			if err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if got := form.Score(); got != tt.score {
				t.Fatalf("unexpected score: got=%d want=%d", got, tt.score)
			}
			if got := form.Factor(); math.Abs(got-tt.factor) > 1e-9 {
				t.Fatalf("unexpected factor: got=%v want=%v", got, tt.factor)
			}
		})
	}
}

func TestParseForm(t *testing.T) {
	if _, err := ParseForm("WXD"); err == nil {
		t.Fatal("expected error for invalid result letter")
	}
	if _, err := ParseForm("WWWWWW"); err == nil {
		t.Fatal("expected error for oversized form")
	}

	form, err := ParseForm("WDL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.String() != "WDL" {
		t.Fatalf("round trip mismatch: got=%q", form.String())
	}
}

func TestRecordUpdatesCounters(t *testing.T) {
	tm := Team{ID: "t1", Name: "One"}

	if r := tm.Record(3, 1); r != ResultWin {
		t.Fatalf("unexpected result: got=%c want=W", r)
	}
	if r := tm.Record(0, 0); r != ResultDraw {
		t.Fatalf("unexpected result: got=%c want=D", r)
	}
	if r := tm.Record(1, 2); r != ResultLoss {
		t.Fatalf("unexpected result: got=%c want=L", r)
	}

	if tm.Points != 4 || tm.Wins != 1 || tm.Draws != 1 || tm.Losses != 1 {
		t.Fatalf("unexpected record: points=%d w=%d d=%d l=%d", tm.Points, tm.Wins, tm.Draws, tm.Losses)
	}
	if tm.GoalsFor != 4 || tm.GoalsAgainst != 3 {
		t.Fatalf("unexpected goals: for=%d against=%d", tm.GoalsFor, tm.GoalsAgainst)
	}
	if tm.GoalDifference() != 1 {
		t.Fatalf("unexpected goal difference: got=%d want=1", tm.GoalDifference())
	}
	if tm.Form.String() != "WDL" {
		t.Fatalf("unexpected form: got=%q", tm.Form.String())
	}
}

func TestCloneDetachesSlices(t *testing.T) {
	tm := Team{ID: "t1", Name: "One", Roster: []string{"p1"}}
	tm.Record(2, 0)

	clone := tm.Clone()
	tm.Record(0, 1)
	tm.Roster[0] = "p2"

	if clone.Form.String() != "W" {
		t.Fatalf("clone form tracked the live team: got=%q", clone.Form.String())
	}
	if clone.Roster[0] != "p1" {
		t.Fatalf("clone roster tracked the live team: got=%q", clone.Roster[0])
	}
	if clone.Points != 3 || clone.GoalsAgainst != 0 {
		t.Fatalf("clone counters tracked the live team: %+v", clone)
	}
}

func TestResetSeasonKeepsRatingsAndBudget(t *testing.T) {
	tm := Team{
		ID:      "t1",
		Name:    "One",
		Offense: 80,
		Defense: 70,
		Budget:  1500,
		Roster:  []string{"p1", "p2"},
	}
	tm.Record(2, 0)
	tm.ResetSeason()

	if tm.Points != 0 || tm.Wins != 0 || tm.GoalsFor != 0 || len(tm.Form) != 0 {
		t.Fatalf("season counters not reset: %+v", tm)
	}
	if tm.Offense != 80 || tm.Defense != 70 || tm.Budget != 1500 || len(tm.Roster) != 2 {
		t.Fatalf("persistent fields were reset: %+v", tm)
	}
}

func TestValidate(t *testing.T) {
	if err := (Team{Name: "No ID"}).Validate(); err == nil {
		t.Fatal("expected error for missing id")
	}
	if err := (Team{ID: "no-name"}).Validate(); err == nil {
		t.Fatal("expected error for missing name")
	}
	if err := (Team{ID: "ok", Name: "OK"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
