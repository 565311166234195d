package match

import "context"

// Repository exposes match persistence.
type Repository interface {
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, item Match) error
	GetByID(ctx context.Context, id string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	ListByStatus(ctx context.Context, status string) ([]Match, error)
	Delete(ctx context.Context, id string) error
}
