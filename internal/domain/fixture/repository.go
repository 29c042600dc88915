package fixture

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID int) ([]Fixture, error)
	ReplaceSeason(ctx context.Context, seasonID int, items []Fixture) error
	UpdateScores(ctx context.Context, items []Fixture) error
}
