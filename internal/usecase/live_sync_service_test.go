package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/infrastructure/repository/memory"
	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
)

type stubFeedProvider struct {
	states map[int64]FeedMatchState
	err    error
}

func (p *stubFeedProvider) FetchMatchState(_ context.Context, feedRefID int64) (FeedMatchState, error) {
	if p.err != nil {
		return FeedMatchState{}, p.err
	}
	state, ok := p.states[feedRefID]
	if !ok {
		return FeedMatchState{}, errors.New("unknown feed reference")
	}
	return state, nil
}

func newLiveSyncServiceForTest(provider LiveFeedProvider) (*LiveSyncService, *memory.MatchRepository) {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	syncer := NewPowerplayService(
		matchRepo,
		memory.NewPowerplayRepository(memory.SeedPowerplays()),
		&sequenceIDGenerator{prefix: "pp"},
		nil,
		nil,
		logging.NewNop(),
	)
	return NewLiveSyncService(matchRepo, provider, syncer, logging.NewNop()), matchRepo
}

func TestLiveSyncService_Sync_AppliesFeedPosition(t *testing.T) {
	provider := &stubFeedProvider{states: map[int64]FeedMatchState{
		900231: {FeedRefID: 900231, Innings: 1, Over: 3, Status: "live"},
	}}
	service, matchRepo := newLiveSyncServiceForTest(provider)
	ctx := t.Context()

	result, err := service.Sync(ctx, LiveSyncInput{})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if result.MatchCount != 1 || result.SuccessCount != 1 || result.FailedCount != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	row := result.Tasks[0]
	if row.Status != liveSyncStatusSuccess || row.Innings != 1 || row.Over != 3 {
		t.Fatalf("unexpected task row: %+v", row)
	}
	if row.Activated != 1 {
		t.Fatalf("expected the mandatory powerplay activated, got %+v", row)
	}

	m, _, err := matchRepo.GetByID(ctx, memory.MatchIDIndPakT20)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if m.CurrentInnings != 1 || m.CurrentOver != 3 {
		t.Fatalf("expected stored position 1/3, got %d/%d", m.CurrentInnings, m.CurrentOver)
	}
}

func TestLiveSyncService_Sync_SkipsWhenFeedIsBehind(t *testing.T) {
	provider := &stubFeedProvider{states: map[int64]FeedMatchState{
		900231: {FeedRefID: 900231, Innings: 1, Over: 0, Status: "live"},
	}}
	service, _ := newLiveSyncServiceForTest(provider)

	result, err := service.Sync(t.Context(), LiveSyncInput{})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.SkippedCount != 1 || result.SuccessCount != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Tasks[0].Status != liveSyncStatusSkipped {
		t.Fatalf("unexpected task row: %+v", result.Tasks[0])
	}
}

func TestLiveSyncService_Sync_DryRunLeavesMatchUntouched(t *testing.T) {
	provider := &stubFeedProvider{states: map[int64]FeedMatchState{
		900231: {FeedRefID: 900231, Innings: 1, Over: 5, Status: "live"},
	}}
	service, matchRepo := newLiveSyncServiceForTest(provider)
	ctx := t.Context()

	result, err := service.Sync(ctx, LiveSyncInput{DryRun: true})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.SuccessCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Tasks[0].Activated != 0 {
		t.Fatalf("dry run must not drive powerplays, got %+v", result.Tasks[0])
	}

	m, _, err := matchRepo.GetByID(ctx, memory.MatchIDIndPakT20)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if m.CurrentOver != 0 {
		t.Fatalf("dry run must not move the stored position, got over %d", m.CurrentOver)
	}
}

func TestLiveSyncService_Sync_ReportsFeedFailure(t *testing.T) {
	provider := &stubFeedProvider{err: errors.New("upstream timeout")}
	service, _ := newLiveSyncServiceForTest(provider)

	result, err := service.Sync(t.Context(), LiveSyncInput{})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.FailedCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Tasks[0].Status != liveSyncStatusFailed || result.Tasks[0].Message != "upstream timeout" {
		t.Fatalf("unexpected task row: %+v", result.Tasks[0])
	}
}

func TestLiveSyncService_Sync_SkipsMatchWithoutFeedRef(t *testing.T) {
	provider := &stubFeedProvider{states: map[int64]FeedMatchState{}}
	matchRepo := memory.NewMatchRepository([]match.Match{
		{
			ID:             "match-unlinked",
			TournamentID:   memory.TournamentIDAsiaCup,
			HomeTeamID:     memory.TeamIDIndia,
			AwayTeamID:     memory.TeamIDPakistan,
			Format:         match.FormatT20,
			Status:         match.StatusLive,
			CurrentInnings: 1,
			StartAt:        time.Date(2026, 9, 6, 14, 30, 0, 0, time.UTC),
		},
	})
	syncer := NewPowerplayService(
		matchRepo,
		memory.NewPowerplayRepository(nil),
		&sequenceIDGenerator{prefix: "pp"},
		nil,
		nil,
		logging.NewNop(),
	)
	service := NewLiveSyncService(matchRepo, provider, syncer, logging.NewNop())

	result, err := service.Sync(t.Context(), LiveSyncInput{})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.SkippedCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Tasks[0].Message != "match has no feed reference" {
		t.Fatalf("unexpected task row: %+v", result.Tasks[0])
	}
}

func TestLiveSyncService_Sync_TargetValidation(t *testing.T) {
	provider := &stubFeedProvider{states: map[int64]FeedMatchState{}}
	service, _ := newLiveSyncServiceForTest(provider)
	ctx := t.Context()

	if _, err := service.Sync(ctx, LiveSyncInput{MatchIDs: []string{" "}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
	if _, err := service.Sync(ctx, LiveSyncInput{MatchIDs: []string{"missing"}}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLiveSyncService_Sync_RequiresProvider(t *testing.T) {
	service, _ := newLiveSyncServiceForTest(nil)

	if _, err := service.Sync(t.Context(), LiveSyncInput{}); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestNormalizeLiveSyncWorkerCount(t *testing.T) {
	cases := []struct {
		value, tasks, want int
	}{
		{0, 0, 1},
		{0, 3, 1},
		{2, 3, 2},
		{8, 10, liveSyncMaxWorkers},
		{3, 2, 2},
	}
	for _, tc := range cases {
		if got := normalizeLiveSyncWorkerCount(tc.value, tc.tasks); got != tc.want {
			t.Fatalf("normalize(%d, %d) = %d, want %d", tc.value, tc.tasks, got, tc.want)
		}
	}
}
