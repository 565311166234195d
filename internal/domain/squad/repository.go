package squad

import "context"

type Repository interface {
	Create(ctx context.Context, item Squad) error
	Update(ctx context.Context, item Squad) error
	GetByID(ctx context.Context, id string) (Squad, bool, error)
	ListBySeries(ctx context.Context, seriesID string) ([]Squad, error)
	ListByTeam(ctx context.Context, teamID string) ([]Squad, error)
	Delete(ctx context.Context, id string) error
}
