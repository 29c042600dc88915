package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
)

type playerTableModel struct {
	ID             string    `db:"id"`
	TeamID         string    `db:"team_id"`
	Name           string    `db:"name"`
	Age            int       `db:"age"`
	Nationality    string    `db:"nationality"`
	Position       string    `db:"position"`
	CurrentAbility float64   `db:"current_ability"`
	Price          float64   `db:"price"`
	Attributes     []byte    `db:"attributes"`
	Stats          []byte    `db:"stats"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (m playerTableModel) toDomain() (player.Player, error) {
	var attrs player.Attributes
	if len(m.Attributes) > 0 {
		if err := sonic.Unmarshal(m.Attributes, &attrs); err != nil {
			return player.Player{}, errors.Wrapf(err, "decode attributes for player %s", m.ID)
		}
	}

	var stats player.SeasonStats
	if len(m.Stats) > 0 {
		if err := sonic.Unmarshal(m.Stats, &stats); err != nil {
			return player.Player{}, errors.Wrapf(err, "decode stats for player %s", m.ID)
		}
	}

	return player.Player{
		ID:             m.ID,
		TeamID:         m.TeamID,
		Name:           m.Name,
		Age:            m.Age,
		Nationality:    m.Nationality,
		Position:       player.Position(m.Position),
		CurrentAbility: m.CurrentAbility,
		Price:          m.Price,
		Attributes:     attrs,
		Stats:          stats,
	}, nil
}

func playerFromDomain(item player.Player) (playerTableModel, error) {
	attrs, err := sonic.Marshal(item.Attributes)
	if err != nil {
		return playerTableModel{}, errors.Wrapf(err, "encode attributes for player %s", item.ID)
	}
	stats, err := sonic.Marshal(item.Stats)
	if err != nil {
		return playerTableModel{}, errors.Wrapf(err, "encode stats for player %s", item.ID)
	}

	return playerTableModel{
		ID:             item.ID,
		TeamID:         item.TeamID,
		Name:           item.Name,
		Age:            item.Age,
		Nationality:    item.Nationality,
		Position:       string(item.Position),
		CurrentAbility: item.CurrentAbility,
		Price:          item.Price,
		Attributes:     attrs,
		Stats:          stats,
	}, nil
}
