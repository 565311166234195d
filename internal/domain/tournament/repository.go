package tournament

import "context"

type Repository interface {
	Create(ctx context.Context, item Tournament) error
	Update(ctx context.Context, item Tournament) error
	GetByID(ctx context.Context, id string) (Tournament, bool, error)
	List(ctx context.Context) ([]Tournament, error)
	Delete(ctx context.Context, id string) error
}
