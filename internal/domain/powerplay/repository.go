package powerplay

import "context"

// Repository persists powerplay records addressed by stable ID.
type Repository interface {
	Create(ctx context.Context, record Record) error
	Update(ctx context.Context, record Record) error
	GetByID(ctx context.Context, matchID, recordID string) (Record, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]Record, error)
	ListByMatchInnings(ctx context.Context, matchID string, innings int) ([]Record, error)
	Delete(ctx context.Context, matchID, recordID string) error
}
