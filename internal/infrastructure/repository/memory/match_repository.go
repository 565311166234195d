package memory

import (
	"context"
	"sync"

	"github.com/fieldcircle/cricket-admin/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	out := &MatchRepository{items: make(map[string]match.Match, len(items))}
	for _, item := range items {
		out.items[item.ID] = cloneMatch(item)
	}
	return out
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneMatch(item)
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneMatch(item)
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(item), true, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneMatch(item))
	}
	return out, nil
}

func (r *MatchRepository) ListByStatus(_ context.Context, status string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := match.NormalizeStatus(status)
	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if match.NormalizeStatus(item.Status) != normalized {
			continue
		}
		out = append(out, cloneMatch(item))
	}
	return out, nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func cloneMatch(m match.Match) match.Match {
	copied := m
	copied.Scores = append([]match.InningsScore(nil), m.Scores...)
	return copied
}
