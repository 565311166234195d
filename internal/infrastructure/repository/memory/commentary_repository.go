package memory

import (
	"context"
	"sync"

	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
)

type CommentaryRepository struct {
	mu            sync.RWMutex
	eventsByMatch map[string][]commentary.BallEvent
}

func NewCommentaryRepository() *CommentaryRepository {
	return &CommentaryRepository{eventsByMatch: make(map[string][]commentary.BallEvent)}
}

func (r *CommentaryRepository) Create(_ context.Context, event commentary.BallEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.eventsByMatch[event.MatchID] = append(r.eventsByMatch[event.MatchID], event)
	return nil
}

func (r *CommentaryRepository) ListByMatch(_ context.Context, matchID string) ([]commentary.BallEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.eventsByMatch[matchID]
	out := make([]commentary.BallEvent, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *CommentaryRepository) ListByMatchInnings(_ context.Context, matchID string, innings int) ([]commentary.BallEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.eventsByMatch[matchID]
	out := make([]commentary.BallEvent, 0, len(items))
	for _, item := range items {
		if item.Innings != innings {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// LatestByMatch returns the last deliveries in newest-first order.
func (r *CommentaryRepository) LatestByMatch(_ context.Context, matchID string, limit int) ([]commentary.BallEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.eventsByMatch[matchID]
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	out := make([]commentary.BallEvent, 0, limit)
	for i := len(items) - 1; i >= len(items)-limit; i-- {
		out = append(out, items[i])
	}
	return out, nil
}
