package memory

import (
	"context"
	"sync"

	"github.com/fieldcircle/cricket-admin/internal/domain/squad"
)

type SquadRepository struct {
	mu    sync.RWMutex
	items map[string]squad.Squad
}

func NewSquadRepository(items []squad.Squad) *SquadRepository {
	out := &SquadRepository{items: make(map[string]squad.Squad, len(items))}
	for _, item := range items {
		out.items[item.ID] = cloneSquad(item)
	}
	return out
}

func (r *SquadRepository) Create(_ context.Context, item squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneSquad(item)
	return nil
}

func (r *SquadRepository) Update(_ context.Context, item squad.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneSquad(item)
	return nil
}

func (r *SquadRepository) GetByID(_ context.Context, id string) (squad.Squad, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return squad.Squad{}, false, nil
	}
	return cloneSquad(item), true, nil
}

func (r *SquadRepository) ListBySeries(_ context.Context, seriesID string) ([]squad.Squad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]squad.Squad, 0, len(r.items))
	for _, item := range r.items {
		if item.SeriesID != seriesID {
			continue
		}
		out = append(out, cloneSquad(item))
	}
	return out, nil
}

func (r *SquadRepository) ListByTeam(_ context.Context, teamID string) ([]squad.Squad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]squad.Squad, 0, len(r.items))
	for _, item := range r.items {
		if item.TeamID != teamID {
			continue
		}
		out = append(out, cloneSquad(item))
	}
	return out, nil
}

func (r *SquadRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func cloneSquad(s squad.Squad) squad.Squad {
	copied := s
	copied.PlayerIDs = append([]string(nil), s.PlayerIDs...)
	return copied
}
