package fixture

import "fmt"

// Fixture is one scheduled match. It references teams by ID only, so
// fixtures stay valid when teams are reloaded between seasons. Scores are
// nil until the match engine records the result, exactly once.
type Fixture struct {
	ID        string
	SeasonID  int
	Gameweek  int
	HomeID    string
	AwayID    string
	HomeGoals *int
	AwayGoals *int
	Played    bool
}

// RecordScore marks the fixture played with its final score.
func (f *Fixture) RecordScore(home, away int) {
	f.HomeGoals = &home
	f.AwayGoals = &away
	f.Played = true
}

func (f Fixture) Validate() error {
	if f.HomeID == "" || f.AwayID == "" {
		return fmt.Errorf("fixture requires both team ids")
	}
	if f.HomeID == f.AwayID {
		return fmt.Errorf("fixture cannot pair a team with itself")
	}
	if f.Gameweek < 1 {
		return fmt.Errorf("fixture gameweek must be >= 1")
	}
	return nil
}

func (f Fixture) String() string {
	if !f.Played || f.HomeGoals == nil || f.AwayGoals == nil {
		return fmt.Sprintf("gw%d %s vs %s", f.Gameweek, f.HomeID, f.AwayID)
	}
	return fmt.Sprintf("gw%d %s %d - %d %s", f.Gameweek, f.HomeID, *f.HomeGoals, *f.AwayGoals, f.AwayID)
}
