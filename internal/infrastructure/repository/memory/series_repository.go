package memory

import (
	"context"
	"sync"

	"github.com/fieldcircle/cricket-admin/internal/domain/series"
)

type SeriesRepository struct {
	mu    sync.RWMutex
	items map[string]series.Series
}

func NewSeriesRepository(items []series.Series) *SeriesRepository {
	out := &SeriesRepository{items: make(map[string]series.Series, len(items))}
	for _, item := range items {
		out.items[item.ID] = item
	}
	return out
}

func (r *SeriesRepository) Create(_ context.Context, item series.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *SeriesRepository) Update(_ context.Context, item series.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *SeriesRepository) GetByID(_ context.Context, id string) (series.Series, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return series.Series{}, false, nil
	}
	return item, true, nil
}

func (r *SeriesRepository) List(_ context.Context) ([]series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]series.Series, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *SeriesRepository) ListByTournament(_ context.Context, tournamentID string) ([]series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]series.Series, 0, len(r.items))
	for _, item := range r.items {
		if item.TournamentID != tournamentID {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *SeriesRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
