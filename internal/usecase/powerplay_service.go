package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
	"github.com/fieldcircle/cricket-admin/internal/platform/cache"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
)

const (
	cacheKeyPowerplayList    = "powerplays:"
	cacheKeyPowerplayCurrent = "powerplay-current:"
)

// PowerplayTransition describes one lifecycle change, published to the
// transition notifier after the repository write commits.
type PowerplayTransition struct {
	MatchID   string `json:"match_id"`
	RecordID  string `json:"record_id"`
	Type      string `json:"type"`
	Innings   int    `json:"innings"`
	From      string `json:"from"`
	To        string `json:"to"`
	Over      int    `json:"over,omitempty"`
	Triggered string `json:"triggered"`
}

// PowerplayNotifier publishes transitions to an external consumer.
// Failures must never fail the scoring path; they are logged and dropped.
type PowerplayNotifier interface {
	NotifyTransition(ctx context.Context, transition PowerplayTransition) error
}

type CreatePowerplayInput struct {
	Type                     string
	Innings                  int
	StartOver                int
	EndOver                  int
	MaxFieldersOutsideCircle int
	IsMandatory              bool
	Description              string
}

type UpdatePowerplayInput struct {
	Type                     *string
	StartOver                *int
	EndOver                  *int
	MaxFieldersOutsideCircle *int
	IsMandatory              *bool
	Description              *string
}

// AdvanceResult reports which records changed status during one over sweep.
type AdvanceResult struct {
	Over               int
	ActivatedRecordIDs []string
	CompletedRecordIDs []string
}

// matchLocks serializes powerplay lifecycle transitions per match. Every
// status change for a match happens inside its critical section, which is what
// makes the single-active invariant enforceable.
type matchLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *matchLocks) acquire(matchID string) *sync.Mutex {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[matchID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[matchID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}

type PowerplayService struct {
	matchRepo matchRepoReader
	ppRepo    powerplay.Repository
	ids       idgen.Generator
	notifier  PowerplayNotifier
	cache     *cache.Store
	logger    *logging.Logger
	locks     matchLocks
	now       func() time.Time
}

type matchRepoReader interface {
	GetByID(ctx context.Context, id string) (match.Match, bool, error)
	Update(ctx context.Context, item match.Match) error
}

func NewPowerplayService(
	matchRepo matchRepoReader,
	ppRepo powerplay.Repository,
	ids idgen.Generator,
	notifier PowerplayNotifier,
	store *cache.Store,
	logger *logging.Logger,
) *PowerplayService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PowerplayService{
		matchRepo: matchRepo,
		ppRepo:    ppRepo,
		ids:       ids,
		notifier:  notifier,
		cache:     store,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *PowerplayService) Create(ctx context.Context, matchID string, input CreatePowerplayInput) (powerplay.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.Create")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return powerplay.Record{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	ppType := powerplay.NormalizeType(input.Type)
	if !powerplay.IsValidType(ppType) {
		return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, powerplay.ErrInvalidType)
	}
	if input.Innings < 1 {
		return powerplay.Record{}, fmt.Errorf("%w: innings must be >= 1", ErrInvalidInput)
	}
	if err := powerplay.ValidateWindow(input.StartOver, input.EndOver); err != nil {
		return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := powerplay.ValidateFielders(input.MaxFieldersOutsideCircle); err != nil {
		return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return powerplay.Record{}, err
	}
	if cap := match.OversPerInnings(m.Format); cap > 0 && input.EndOver > cap {
		return powerplay.Record{}, fmt.Errorf("%w: end over %d exceeds %s innings length", ErrInvalidInput, input.EndOver, m.Format)
	}

	recordID, err := s.ids.NewID()
	if err != nil {
		return powerplay.Record{}, fmt.Errorf("new powerplay id: %w", err)
	}

	record := powerplay.Record{
		ID:                       recordID,
		MatchID:                  matchID,
		Type:                     ppType,
		Status:                   powerplay.StatusPending,
		Innings:                  input.Innings,
		StartOver:                input.StartOver,
		EndOver:                  input.EndOver,
		MaxFieldersOutsideCircle: input.MaxFieldersOutsideCircle,
		IsMandatory:              input.IsMandatory,
		Description:              strings.TrimSpace(input.Description),
	}

	if err := s.ppRepo.Create(ctx, record); err != nil {
		return powerplay.Record{}, fmt.Errorf("create powerplay: %w", err)
	}
	s.invalidate(ctx, matchID)

	return record, nil
}

func (s *PowerplayService) Update(ctx context.Context, matchID, recordID string, input UpdatePowerplayInput) (powerplay.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.Update")
	defer span.End()

	lock := s.locks.acquire(matchID)
	defer lock.Unlock()

	record, err := s.getRecord(ctx, matchID, recordID)
	if err != nil {
		return powerplay.Record{}, err
	}

	windowEdit := input.StartOver != nil || input.EndOver != nil
	if windowEdit && record.Status != powerplay.StatusPending {
		return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, powerplay.ErrRecordNotEditable)
	}

	if input.Type != nil {
		ppType := powerplay.NormalizeType(*input.Type)
		if !powerplay.IsValidType(ppType) {
			return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, powerplay.ErrInvalidType)
		}
		record.Type = ppType
	}
	if input.StartOver != nil {
		record.StartOver = *input.StartOver
	}
	if input.EndOver != nil {
		record.EndOver = *input.EndOver
	}
	if windowEdit {
		if err := powerplay.ValidateWindow(record.StartOver, record.EndOver); err != nil {
			return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	if input.MaxFieldersOutsideCircle != nil {
		if err := powerplay.ValidateFielders(*input.MaxFieldersOutsideCircle); err != nil {
			return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		record.MaxFieldersOutsideCircle = *input.MaxFieldersOutsideCircle
	}
	if input.IsMandatory != nil {
		record.IsMandatory = *input.IsMandatory
	}
	if input.Description != nil {
		record.Description = strings.TrimSpace(*input.Description)
	}

	if err := s.ppRepo.Update(ctx, record); err != nil {
		return powerplay.Record{}, fmt.Errorf("update powerplay: %w", err)
	}
	s.invalidate(ctx, matchID)

	return record, nil
}

func (s *PowerplayService) ListByMatch(ctx context.Context, matchID string) ([]powerplay.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.ListByMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if _, err := s.getMatch(ctx, matchID); err != nil {
		return nil, err
	}

	if s.cache == nil {
		return s.listSorted(ctx, matchID)
	}

	value, err := s.cache.GetOrLoad(ctx, cacheKeyPowerplayList+matchID, func(ctx context.Context) (any, error) {
		return s.listSorted(ctx, matchID)
	})
	if err != nil {
		return nil, err
	}
	records, _ := value.([]powerplay.Record)
	return records, nil
}

func (s *PowerplayService) Current(ctx context.Context, matchID string) (powerplay.CurrentView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.Current")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return powerplay.CurrentView{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if _, err := s.getMatch(ctx, matchID); err != nil {
		return powerplay.CurrentView{}, err
	}

	load := func(ctx context.Context) (any, error) {
		records, err := s.ppRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return nil, fmt.Errorf("list powerplays: %w", err)
		}
		return powerplay.CurrentViewOf(records), nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return powerplay.CurrentView{}, err
		}
		return value.(powerplay.CurrentView), nil
	}

	value, err := s.cache.GetOrLoad(ctx, cacheKeyPowerplayCurrent+matchID, load)
	if err != nil {
		return powerplay.CurrentView{}, err
	}
	view, _ := value.(powerplay.CurrentView)
	return view, nil
}

func (s *PowerplayService) Delete(ctx context.Context, matchID, recordID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.Delete")
	defer span.End()

	lock := s.locks.acquire(matchID)
	defer lock.Unlock()

	if _, err := s.getRecord(ctx, matchID, recordID); err != nil {
		return err
	}
	if err := s.ppRepo.Delete(ctx, matchID, recordID); err != nil {
		return fmt.Errorf("delete powerplay: %w", err)
	}
	s.invalidate(ctx, matchID)

	return nil
}

// Activate moves a record to ACTIVE. Any other active record for the same
// match and innings is completed first, inside the same critical section.
func (s *PowerplayService) Activate(ctx context.Context, matchID, recordID string) (powerplay.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.Activate")
	defer span.End()

	lock := s.locks.acquire(matchID)
	defer lock.Unlock()

	record, err := s.getRecord(ctx, matchID, recordID)
	if err != nil {
		return powerplay.Record{}, err
	}
	if record.Status == powerplay.StatusActive {
		return record, nil
	}
	if err := powerplay.CanActivate(record); err != nil {
		return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.completeOtherActive(ctx, matchID, record.Innings, record.ID, 0, "manual"); err != nil {
		return powerplay.Record{}, err
	}

	record, err = s.activateRecord(ctx, record, 0, "manual")
	if err != nil {
		return powerplay.Record{}, err
	}
	s.invalidate(ctx, matchID)

	return record, nil
}

// Deactivate derives the active record for the innings and completes it.
func (s *PowerplayService) Deactivate(ctx context.Context, matchID string, innings int) (powerplay.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.Deactivate")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return powerplay.Record{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if innings < 1 {
		return powerplay.Record{}, fmt.Errorf("%w: innings must be >= 1", ErrInvalidInput)
	}

	lock := s.locks.acquire(matchID)
	defer lock.Unlock()

	records, err := s.ppRepo.ListByMatchInnings(ctx, matchID, innings)
	if err != nil {
		return powerplay.Record{}, fmt.Errorf("list powerplays: %w", err)
	}

	for _, record := range records {
		if record.Status != powerplay.StatusActive {
			continue
		}
		completed, err := s.completeRecord(ctx, record, 0, "manual")
		if err != nil {
			return powerplay.Record{}, err
		}
		s.invalidate(ctx, matchID)
		return completed, nil
	}

	return powerplay.Record{}, fmt.Errorf("%w: %w", ErrNotFound, powerplay.ErrNoActivePowerplay)
}

// AdvanceOver applies the auto-management rule for a new over value: an
// active record strictly past its window completes, then the earliest pending
// record whose window contains the over activates, provided nothing else is
// active. Re-running the same over is a no-op.
func (s *PowerplayService) AdvanceOver(ctx context.Context, matchID string, innings, over int) (AdvanceResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.AdvanceOver")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return AdvanceResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if innings < 1 {
		return AdvanceResult{}, fmt.Errorf("%w: innings must be >= 1", ErrInvalidInput)
	}
	if over < 0 {
		return AdvanceResult{}, fmt.Errorf("%w: over cannot be negative", ErrInvalidInput)
	}

	lock := s.locks.acquire(matchID)
	defer lock.Unlock()

	records, err := s.ppRepo.ListByMatchInnings(ctx, matchID, innings)
	if err != nil {
		return AdvanceResult{}, fmt.Errorf("list powerplays: %w", err)
	}
	sortRecords(records)

	result := AdvanceResult{Over: over}
	activeCount := 0
	for _, record := range records {
		if record.Status != powerplay.StatusActive {
			continue
		}
		if powerplay.WindowPassed(record, over) {
			if _, err := s.completeRecord(ctx, record, over, "auto"); err != nil {
				return AdvanceResult{}, err
			}
			result.CompletedRecordIDs = append(result.CompletedRecordIDs, record.ID)
			continue
		}
		activeCount++
	}

	if activeCount == 0 {
		for _, record := range records {
			if record.Status != powerplay.StatusPending || !powerplay.WindowContains(record, over) {
				continue
			}
			if _, err := s.activateRecord(ctx, record, over, "auto"); err != nil {
				return AdvanceResult{}, err
			}
			result.ActivatedRecordIDs = append(result.ActivatedRecordIDs, record.ID)
			break
		}
	}

	if len(result.ActivatedRecordIDs) > 0 || len(result.CompletedRecordIDs) > 0 {
		s.invalidate(ctx, matchID)
	}

	return result, nil
}

// OverrideCurrentOver is the manual admin control: it moves the match's
// authoritative over position and runs the auto-management sweep.
func (s *PowerplayService) OverrideCurrentOver(ctx context.Context, matchID string, innings, over int) (AdvanceResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.OverrideCurrentOver")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return AdvanceResult{}, err
	}
	if innings < 1 {
		return AdvanceResult{}, fmt.Errorf("%w: innings must be >= 1", ErrInvalidInput)
	}
	if over < 0 {
		return AdvanceResult{}, fmt.Errorf("%w: over cannot be negative", ErrInvalidInput)
	}

	m.CurrentInnings = innings
	m.CurrentOver = over
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return AdvanceResult{}, fmt.Errorf("update match current over: %w", err)
	}

	s.logger.InfoContext(ctx, "current over overridden",
		"match_id", m.ID, "innings", innings, "over", over)

	return s.AdvanceOver(ctx, m.ID, innings, over)
}

// ApplyBall folds one delivery into the active record's stats. Must be called
// before AdvanceOver for the delivery's over so a window-closing ball still
// counts toward the record it belongs to.
func (s *PowerplayService) ApplyBall(ctx context.Context, event commentary.BallEvent) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PowerplayService.ApplyBall")
	defer span.End()

	lock := s.locks.acquire(event.MatchID)
	defer lock.Unlock()

	records, err := s.ppRepo.ListByMatchInnings(ctx, event.MatchID, event.Innings)
	if err != nil {
		return fmt.Errorf("list powerplays: %w", err)
	}

	for _, record := range records {
		if record.Status != powerplay.StatusActive || !powerplay.WindowContains(record, event.Over) {
			continue
		}

		record.Stats.Runs += commentary.TotalRuns(event)
		if event.Wicket {
			record.Stats.Wickets++
		}
		if commentary.IsBoundary(event) {
			record.Stats.Boundaries++
		}
		if commentary.IsSix(event) {
			record.Stats.Sixes++
		}

		oversFaced := float64(event.Over-record.StartOver) + float64(event.BallInOver)/float64(commentary.BallsPerOver)
		if oversFaced > 0 {
			record.Stats.OversCompleted = oversFaced
			record.Stats.RunRate = float64(record.Stats.Runs) / oversFaced
		}

		if err := s.ppRepo.Update(ctx, record); err != nil {
			return fmt.Errorf("update powerplay stats: %w", err)
		}
		s.invalidate(ctx, event.MatchID)
		return nil
	}

	return nil
}

func (s *PowerplayService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *PowerplayService) getRecord(ctx context.Context, matchID, recordID string) (powerplay.Record, error) {
	matchID = strings.TrimSpace(matchID)
	recordID = strings.TrimSpace(recordID)
	if matchID == "" {
		return powerplay.Record{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if recordID == "" {
		return powerplay.Record{}, fmt.Errorf("%w: powerplay id is required", ErrInvalidInput)
	}

	record, exists, err := s.ppRepo.GetByID(ctx, matchID, recordID)
	if err != nil {
		return powerplay.Record{}, fmt.Errorf("get powerplay: %w", err)
	}
	if !exists {
		return powerplay.Record{}, fmt.Errorf("%w: powerplay=%s", ErrNotFound, recordID)
	}
	return record, nil
}

func (s *PowerplayService) completeOtherActive(ctx context.Context, matchID string, innings int, keepID string, over int, trigger string) error {
	records, err := s.ppRepo.ListByMatchInnings(ctx, matchID, innings)
	if err != nil {
		return fmt.Errorf("list powerplays: %w", err)
	}

	for _, record := range records {
		if record.ID == keepID || record.Status != powerplay.StatusActive {
			continue
		}
		if _, err := s.completeRecord(ctx, record, over, trigger); err != nil {
			return err
		}
	}
	return nil
}

func (s *PowerplayService) activateRecord(ctx context.Context, record powerplay.Record, over int, trigger string) (powerplay.Record, error) {
	from := record.Status
	now := s.now()
	record.Status = powerplay.StatusActive
	record.ActivatedAt = &now

	if err := s.ppRepo.Update(ctx, record); err != nil {
		return powerplay.Record{}, fmt.Errorf("activate powerplay: %w", err)
	}

	s.logger.InfoContext(ctx, "powerplay activated",
		"match_id", record.MatchID, "powerplay_id", record.ID,
		"innings", record.Innings, "over", over, "trigger", trigger)
	s.notify(ctx, record, from, over, trigger)

	return record, nil
}

func (s *PowerplayService) completeRecord(ctx context.Context, record powerplay.Record, over int, trigger string) (powerplay.Record, error) {
	if err := powerplay.CanComplete(record); err != nil {
		return powerplay.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	from := record.Status
	now := s.now()
	record.Status = powerplay.StatusCompleted
	record.CompletedAt = &now

	if err := s.ppRepo.Update(ctx, record); err != nil {
		return powerplay.Record{}, fmt.Errorf("complete powerplay: %w", err)
	}

	s.logger.InfoContext(ctx, "powerplay completed",
		"match_id", record.MatchID, "powerplay_id", record.ID,
		"innings", record.Innings, "over", over, "trigger", trigger)
	s.notify(ctx, record, from, over, trigger)

	return record, nil
}

func (s *PowerplayService) notify(ctx context.Context, record powerplay.Record, from string, over int, trigger string) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.NotifyTransition(ctx, PowerplayTransition{
		MatchID:   record.MatchID,
		RecordID:  record.ID,
		Type:      record.Type,
		Innings:   record.Innings,
		From:      from,
		To:        record.Status,
		Over:      over,
		Triggered: trigger,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "powerplay transition notify failed",
			"match_id", record.MatchID, "powerplay_id", record.ID, "error", err)
	}
}

func (s *PowerplayService) invalidate(ctx context.Context, matchID string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, cacheKeyPowerplayList+matchID)
	s.cache.Delete(ctx, cacheKeyPowerplayCurrent+matchID)
}

func (s *PowerplayService) listSorted(ctx context.Context, matchID string) ([]powerplay.Record, error) {
	records, err := s.ppRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list powerplays: %w", err)
	}
	sortRecords(records)
	return records, nil
}

func sortRecords(records []powerplay.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Innings != records[j].Innings {
			return records[i].Innings < records[j].Innings
		}
		if records[i].StartOver != records[j].StartOver {
			return records[i].StartOver < records[j].StartOver
		}
		return records[i].ID < records[j].ID
	})
}
