package season

import (
	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

// State tracks the orchestrator's lifecycle.
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateInProgress State = "IN_PROGRESS"
	StateComplete   State = "COMPLETE"
)

// TableRow is one ranked standings line. Rows are value copies so a
// snapshot stays frozen when the live teams keep mutating.
type TableRow struct {
	Position     int
	TeamID       string
	TeamName     string
	Played       int
	Points       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Form         string
	Budget       float64
}

// Snapshot freezes the full table after one gameweek for historical replay.
type Snapshot struct {
	SeasonID int
	Gameweek int
	Rows     []TableRow
}

// Season owns a campaign's fixtures and its per-gameweek snapshot history.
type Season struct {
	ID       int
	State    State
	Fixtures []fixture.Fixture
	History  []Snapshot
}

// MatchResult is the outcome of one simulated fixture: the final score plus
// the per-player stat lines accumulated during the match.
type MatchResult struct {
	Fixture       fixture.Fixture
	HomeGoals     int
	AwayGoals     int
	HomeResult    team.Result
	AwayResult    team.Result
	PlayerStats   map[string]PlayerMatchStats
	ManOfTheMatch string
}

// PlayerMatchStats is one player's contribution in a single match. Rating
// is the [1,5] normalized display rating.
type PlayerMatchStats struct {
	PlayerID string
	Shots    int
	Goals    int
	Assists  int
	Saves    int
	Rating   float64
}
