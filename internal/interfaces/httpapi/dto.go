package httpapi

import (
	"github.com/riskibarqy/league-simulator/internal/domain/player"
	"github.com/riskibarqy/league-simulator/internal/domain/season"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

type teamDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Offense      float64 `json:"offense"`
	Defense      float64 `json:"defense"`
	Points       int     `json:"points"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	GoalsFor     int     `json:"goalsFor"`
	GoalsAgainst int     `json:"goalsAgainst"`
	GoalDiff     int     `json:"goalDiff"`
	Form         string  `json:"form"`
	Budget       float64 `json:"budget"`
	SquadSize    int     `json:"squadSize"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:           t.ID,
		Name:         t.Name,
		Offense:      t.Offense,
		Defense:      t.Defense,
		Points:       t.Points,
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
		GoalDiff:     t.GoalDifference(),
		Form:         t.Form.String(),
		Budget:       t.Budget,
		SquadSize:    len(t.Roster),
	}
}

type playerStatsDTO struct {
	Appearances   int     `json:"appearances"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Shots         int     `json:"shots"`
	Saves         int     `json:"saves"`
	ManOfTheMatch int     `json:"manOfTheMatch"`
	Rating        float64 `json:"rating"`
}

type playerDTO struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Age            int            `json:"age"`
	Nationality    string         `json:"nationality"`
	TeamID         string         `json:"teamId"`
	Position       string         `json:"position"`
	CurrentAbility float64        `json:"currentAbility"`
	Price          float64        `json:"price"`
	Stats          playerStatsDTO `json:"stats"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:             p.ID,
		Name:           p.Name,
		Age:            p.Age,
		Nationality:    p.Nationality,
		TeamID:         p.TeamID,
		Position:       string(p.Position),
		CurrentAbility: p.CurrentAbility,
		Price:          p.Price,
		Stats: playerStatsDTO{
			Appearances:   p.Stats.Appearances,
			Goals:         p.Stats.Goals,
			Assists:       p.Stats.Assists,
			Shots:         p.Stats.Shots,
			Saves:         p.Stats.Saves,
			ManOfTheMatch: p.Stats.ManOfTheMatch,
			Rating:        p.Stats.Rating,
		},
	}
}

type tableRowDTO struct {
	Position     int     `json:"position"`
	TeamID       string  `json:"teamId"`
	TeamName     string  `json:"teamName"`
	Played       int     `json:"played"`
	Points       int     `json:"points"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	GoalsFor     int     `json:"goalsFor"`
	GoalsAgainst int     `json:"goalsAgainst"`
	GoalDiff     int     `json:"goalDiff"`
	Form         string  `json:"form"`
	Budget       float64 `json:"budget"`
}

func tableToDTO(rows []season.TableRow) []tableRowDTO {
	out := make([]tableRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, tableRowDTO{
			Position:     row.Position,
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			Played:       row.Played,
			Points:       row.Points,
			Wins:         row.Wins,
			Draws:        row.Draws,
			Losses:       row.Losses,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			GoalDiff:     row.GoalDiff,
			Form:         row.Form,
			Budget:       row.Budget,
		})
	}
	return out
}

type snapshotDTO struct {
	SeasonID int           `json:"seasonId"`
	Gameweek int           `json:"gameweek"`
	Rows     []tableRowDTO `json:"rows"`
}

func snapshotToDTO(s season.Snapshot) snapshotDTO {
	return snapshotDTO{
		SeasonID: s.SeasonID,
		Gameweek: s.Gameweek,
		Rows:     tableToDTO(s.Rows),
	}
}
