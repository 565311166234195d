package player

import "context"

type Repository interface {
	Create(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) error
	GetByID(ctx context.Context, id string) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	Delete(ctx context.Context, id string) error
}
