package series

import "context"

type Repository interface {
	Create(ctx context.Context, item Series) error
	Update(ctx context.Context, item Series) error
	GetByID(ctx context.Context, id string) (Series, bool, error)
	List(ctx context.Context) ([]Series, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Series, error)
	Delete(ctx context.Context, id string) error
}
