package usecase

import (
	"sort"

	"github.com/riskibarqy/league-simulator/internal/domain/season"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

// StandingService ranks teams and freezes per-gameweek snapshots. Season
// counters themselves are mutated only through team.Record on the match
// commit path; this service only reads them.
type StandingService struct{}

func NewStandingService() *StandingService {
	return &StandingService{}
}

// Table returns ranked rows: points desc, goal difference desc, goals-for
// desc, name asc. The name tiebreak makes the order a strict total order,
// so two calls over the same teams always agree.
func (s *StandingService) Table(teams []*team.Team) []season.TableRow {
	rows := make([]season.TableRow, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, season.TableRow{
			TeamID:       t.ID,
			TeamName:     t.Name,
			Played:       t.Wins + t.Draws + t.Losses,
			Points:       t.Points,
			Wins:         t.Wins,
			Draws:        t.Draws,
			Losses:       t.Losses,
			GoalsFor:     t.GoalsFor,
			GoalsAgainst: t.GoalsAgainst,
			GoalDiff:     t.GoalDifference(),
			Form:         t.Form.String(),
			Budget:       t.Budget,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.TeamName < b.TeamName
	})

	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

// Snapshot freezes the current table for history. Rows are value copies;
// later mutations of the live teams cannot reach into a snapshot.
func (s *StandingService) Snapshot(seasonID, gameweek int, teams []*team.Team) season.Snapshot {
	return season.Snapshot{
		SeasonID: seasonID,
		Gameweek: gameweek,
		Rows:     s.Table(teams),
	}
}
