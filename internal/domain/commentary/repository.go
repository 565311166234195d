package commentary

import "context"

type Repository interface {
	Create(ctx context.Context, event BallEvent) error
	ListByMatch(ctx context.Context, matchID string) ([]BallEvent, error)
	ListByMatchInnings(ctx context.Context, matchID string, innings int) ([]BallEvent, error)
	LatestByMatch(ctx context.Context, matchID string, limit int) ([]BallEvent, error)
}
