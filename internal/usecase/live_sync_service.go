package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
)

// FeedMatchState is the over position reported by the live feed provider for
// one match.
type FeedMatchState struct {
	FeedRefID int64
	Innings   int
	Over      int
	Status    string
}

// LiveFeedProvider pulls authoritative match state from the upstream scoring
// feed.
type LiveFeedProvider interface {
	FetchMatchState(ctx context.Context, feedRefID int64) (FeedMatchState, error)
}

type LiveSyncInput struct {
	// MatchIDs narrows the sweep; empty means every live match.
	MatchIDs   []string
	MaxWorkers int
	// DryRun fetches feed state and reports drift without applying it.
	DryRun bool
}

type LiveSyncResult struct {
	MatchCount   int                  `json:"match_count"`
	TaskCount    int                  `json:"task_count"`
	SuccessCount int                  `json:"success_count"`
	FailedCount  int                  `json:"failed_count"`
	SkippedCount int                  `json:"skipped_count"`
	WorkerCount  int                  `json:"worker_count"`
	Tasks        []LiveSyncTaskResult `json:"tasks"`
}

type LiveSyncTaskResult struct {
	MatchID    string `json:"match_id"`
	FeedRefID  int64  `json:"feed_ref_id,omitempty"`
	Status     string `json:"status"`
	Innings    int    `json:"innings,omitempty"`
	Over       int    `json:"over,omitempty"`
	Activated  int    `json:"activated"`
	Completed  int    `json:"completed"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	liveSyncStatusSuccess = "success"
	liveSyncStatusFailed  = "failed"
	liveSyncStatusSkipped = "skipped"

	liveSyncMaxWorkers = 4
)

// overSyncer is the slice of PowerplayService the live sweep drives.
type overSyncer interface {
	OverrideCurrentOver(ctx context.Context, matchID string, innings, over int) (AdvanceResult, error)
}

type LiveSyncService struct {
	matchRepo match.Repository
	provider  LiveFeedProvider
	syncer    overSyncer
	logger    *logging.Logger
}

func NewLiveSyncService(
	matchRepo match.Repository,
	provider LiveFeedProvider,
	syncer overSyncer,
	logger *logging.Logger,
) *LiveSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LiveSyncService{
		matchRepo: matchRepo,
		provider:  provider,
		syncer:    syncer,
		logger:    logger,
	}
}

// Sync sweeps live matches, pulls the current over position from the feed,
// and applies it when the feed has moved ahead of the stored position. The
// per-match powerplay lock serializes this against commentary ingestion.
func (s *LiveSyncService) Sync(ctx context.Context, input LiveSyncInput) (LiveSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveSyncService.Sync")
	defer span.End()

	if s.provider == nil {
		return LiveSyncResult{}, fmt.Errorf("%w: live feed provider is not configured", ErrDependencyUnavailable)
	}

	targets, err := s.resolveTargets(ctx, input.MatchIDs)
	if err != nil {
		return LiveSyncResult{}, err
	}

	workerCount := normalizeLiveSyncWorkerCount(input.MaxWorkers, len(targets))
	result := LiveSyncResult{
		MatchCount:  len(targets),
		TaskCount:   len(targets),
		WorkerCount: workerCount,
		Tasks:       make([]LiveSyncTaskResult, 0, len(targets)),
	}
	if len(targets) == 0 {
		return result, nil
	}

	results := make(chan LiveSyncTaskResult, len(targets))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return LiveSyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, target := range targets {
		target := target
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.syncMatch(ctx, target, input.DryRun)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case liveSyncStatusSuccess:
				successCount.Add(1)
			case liveSyncStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return LiveSyncResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].MatchID < result.Tasks[j].MatchID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	return result, nil
}

func (s *LiveSyncService) syncMatch(ctx context.Context, m match.Match, dryRun bool) LiveSyncTaskResult {
	row := LiveSyncTaskResult{
		MatchID:   m.ID,
		FeedRefID: m.FeedRefID,
	}

	if m.FeedRefID <= 0 {
		row.Status = liveSyncStatusSkipped
		row.Message = "match has no feed reference"
		return row
	}

	state, err := s.provider.FetchMatchState(ctx, m.FeedRefID)
	if err != nil {
		row.Status = liveSyncStatusFailed
		row.Message = err.Error()
		return row
	}
	row.Innings = state.Innings
	row.Over = state.Over

	if state.Innings < 1 || state.Over < 0 {
		row.Status = liveSyncStatusSkipped
		row.Message = fmt.Sprintf("feed reported unusable position innings=%d over=%d", state.Innings, state.Over)
		return row
	}

	// Never rewind: the stored position moves forward only. Operators rewind
	// through the manual override endpoint when the feed misreported.
	if state.Innings < m.CurrentInnings ||
		(state.Innings == m.CurrentInnings && state.Over <= m.CurrentOver) {
		row.Status = liveSyncStatusSkipped
		row.Message = "feed position is not ahead of stored position"
		return row
	}

	if dryRun {
		row.Status = liveSyncStatusSuccess
		row.Message = fmt.Sprintf("would advance from innings=%d over=%d", m.CurrentInnings, m.CurrentOver)
		return row
	}

	advance, err := s.syncer.OverrideCurrentOver(ctx, m.ID, state.Innings, state.Over)
	if err != nil {
		row.Status = liveSyncStatusFailed
		row.Message = err.Error()
		return row
	}

	row.Status = liveSyncStatusSuccess
	row.Activated = len(advance.ActivatedRecordIDs)
	row.Completed = len(advance.CompletedRecordIDs)

	s.logger.InfoContext(ctx, "live feed sync applied",
		"match_id", m.ID, "feed_ref_id", m.FeedRefID,
		"innings", state.Innings, "over", state.Over,
		"activated", row.Activated, "completed", row.Completed)

	return row
}

func (s *LiveSyncService) resolveTargets(ctx context.Context, matchIDs []string) ([]match.Match, error) {
	live, err := s.matchRepo.ListByStatus(ctx, match.StatusLive)
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}

	if len(matchIDs) == 0 {
		sort.SliceStable(live, func(i, j int) bool { return live[i].ID < live[j].ID })
		return live, nil
	}

	wanted := make(map[string]struct{}, len(matchIDs))
	for _, raw := range matchIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			return nil, fmt.Errorf("%w: match id cannot be empty", ErrInvalidInput)
		}
		wanted[id] = struct{}{}
	}

	out := make([]match.Match, 0, len(wanted))
	for _, m := range live {
		if _, ok := wanted[m.ID]; ok {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no live match matched the requested ids", ErrNotFound)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func normalizeLiveSyncWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > liveSyncMaxWorkers {
		value = liveSyncMaxWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
