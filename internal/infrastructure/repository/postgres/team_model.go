package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

type teamTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Offense      float64   `db:"offense"`
	Defense      float64   `db:"defense"`
	Points       int       `db:"points"`
	Wins         int       `db:"wins"`
	Draws        int       `db:"draws"`
	Losses       int       `db:"losses"`
	GoalsFor     int       `db:"goals_for"`
	GoalsAgainst int       `db:"goals_against"`
	Form         string    `db:"form"`
	Budget       float64   `db:"budget"`
	Roster       []byte    `db:"roster"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() (team.Team, error) {
	form, err := team.ParseForm(m.Form)
	if err != nil {
		return team.Team{}, errors.Wrapf(err, "decode form for team %s", m.ID)
	}

	var roster []string
	if len(m.Roster) > 0 {
		if err := sonic.Unmarshal(m.Roster, &roster); err != nil {
			return team.Team{}, errors.Wrapf(err, "decode roster for team %s", m.ID)
		}
	}

	return team.Team{
		ID:           m.ID,
		Name:         m.Name,
		Offense:      m.Offense,
		Defense:      m.Defense,
		Points:       m.Points,
		Wins:         m.Wins,
		Draws:        m.Draws,
		Losses:       m.Losses,
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
		Form:         form,
		Budget:       m.Budget,
		Roster:       roster,
	}, nil
}

func teamFromDomain(item team.Team) (teamTableModel, error) {
	roster, err := sonic.Marshal(item.Roster)
	if err != nil {
		return teamTableModel{}, errors.Wrapf(err, "encode roster for team %s", item.ID)
	}

	return teamTableModel{
		ID:           item.ID,
		Name:         item.Name,
		Offense:      item.Offense,
		Defense:      item.Defense,
		Points:       item.Points,
		Wins:         item.Wins,
		Draws:        item.Draws,
		Losses:       item.Losses,
		GoalsFor:     item.GoalsFor,
		GoalsAgainst: item.GoalsAgainst,
		Form:         item.Form.String(),
		Budget:       item.Budget,
		Roster:       roster,
	}, nil
}
