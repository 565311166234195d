package memory

import (
	"context"
	"sync"

	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
)

type PowerplayRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]powerplay.Record
}

func NewPowerplayRepository(items []powerplay.Record) *PowerplayRepository {
	out := &PowerplayRepository{items: make(map[string]map[string]powerplay.Record)}
	for _, item := range items {
		out.put(item)
	}
	return out
}

func (r *PowerplayRepository) Create(_ context.Context, record powerplay.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(record)
	return nil
}

func (r *PowerplayRepository) Update(_ context.Context, record powerplay.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(record)
	return nil
}

func (r *PowerplayRepository) GetByID(_ context.Context, matchID, recordID string) (powerplay.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[matchID][recordID]
	if !ok {
		return powerplay.Record{}, false, nil
	}
	return record, true, nil
}

func (r *PowerplayRepository) ListByMatch(_ context.Context, matchID string) ([]powerplay.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.items[matchID]
	out := make([]powerplay.Record, 0, len(byID))
	for _, record := range byID {
		out = append(out, record)
	}
	return out, nil
}

func (r *PowerplayRepository) ListByMatchInnings(_ context.Context, matchID string, innings int) ([]powerplay.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.items[matchID]
	out := make([]powerplay.Record, 0, len(byID))
	for _, record := range byID {
		if record.Innings != innings {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (r *PowerplayRepository) Delete(_ context.Context, matchID, recordID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items[matchID], recordID)
	return nil
}

func (r *PowerplayRepository) put(record powerplay.Record) {
	byID, ok := r.items[record.MatchID]
	if !ok {
		byID = make(map[string]powerplay.Record)
		r.items[record.MatchID] = byID
	}
	byID[record.ID] = record
}
