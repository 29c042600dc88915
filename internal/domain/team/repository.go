package team

import "context"

// Repository describes team persistence needs from use cases. The
// simulation core only touches it at season boundaries.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	UpsertTeams(ctx context.Context, items []Team) error
}
