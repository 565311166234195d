package team

import "context"

type Repository interface {
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) error
	GetByID(ctx context.Context, id string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	Delete(ctx context.Context, id string) error
}
