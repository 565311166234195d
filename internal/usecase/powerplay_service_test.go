package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
	"github.com/fieldcircle/cricket-admin/internal/infrastructure/repository/memory"
	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
)

type sequenceIDGenerator struct {
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

type capturingNotifier struct {
	transitions []PowerplayTransition
}

func (n *capturingNotifier) NotifyTransition(_ context.Context, transition PowerplayTransition) error {
	n.transitions = append(n.transitions, transition)
	return nil
}

func newPowerplayServiceForTest(notifier PowerplayNotifier) *PowerplayService {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	ppRepo := memory.NewPowerplayRepository(memory.SeedPowerplays())
	return NewPowerplayService(
		matchRepo,
		ppRepo,
		&sequenceIDGenerator{prefix: "pp"},
		notifier,
		nil,
		logging.NewNop(),
	)
}

func TestPowerplayService_AdvanceOver_Lifecycle(t *testing.T) {
	notifier := &capturingNotifier{}
	service := newPowerplayServiceForTest(notifier)

	now := time.Date(2026, 9, 6, 15, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	ctx := t.Context()
	matchID := memory.MatchIDIndPakT20

	result, err := service.AdvanceOver(ctx, matchID, 1, 0)
	if err != nil {
		t.Fatalf("advance to over 0: %v", err)
	}
	if len(result.ActivatedRecordIDs) != 0 || len(result.CompletedRecordIDs) != 0 {
		t.Fatalf("over 0 is before the window, expected no transitions: %+v", result)
	}

	result, err = service.AdvanceOver(ctx, matchID, 1, 1)
	if err != nil {
		t.Fatalf("advance to over 1: %v", err)
	}
	if len(result.ActivatedRecordIDs) != 1 || result.ActivatedRecordIDs[0] != "pp-ind-pak-1" {
		t.Fatalf("expected pp-ind-pak-1 activated at over 1, got %+v", result)
	}

	view, err := service.Current(ctx, matchID)
	if err != nil {
		t.Fatalf("current view: %v", err)
	}
	if !view.HasActive || view.RecordID != "pp-ind-pak-1" {
		t.Fatalf("unexpected current view: %+v", view)
	}

	for _, over := range []int{3, 6} {
		result, err = service.AdvanceOver(ctx, matchID, 1, over)
		if err != nil {
			t.Fatalf("advance to over %d: %v", over, err)
		}
		if len(result.ActivatedRecordIDs) != 0 || len(result.CompletedRecordIDs) != 0 {
			t.Fatalf("over %d is inside the window, expected no transitions: %+v", over, result)
		}
	}

	result, err = service.AdvanceOver(ctx, matchID, 1, 7)
	if err != nil {
		t.Fatalf("advance to over 7: %v", err)
	}
	if len(result.CompletedRecordIDs) != 1 || result.CompletedRecordIDs[0] != "pp-ind-pak-1" {
		t.Fatalf("expected pp-ind-pak-1 completed at over 7, got %+v", result)
	}

	result, err = service.AdvanceOver(ctx, matchID, 1, 7)
	if err != nil {
		t.Fatalf("re-advance to over 7: %v", err)
	}
	if len(result.ActivatedRecordIDs) != 0 || len(result.CompletedRecordIDs) != 0 {
		t.Fatalf("re-running the same over must be a no-op: %+v", result)
	}

	if len(notifier.transitions) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(notifier.transitions))
	}
	if notifier.transitions[0].To != powerplay.StatusActive || notifier.transitions[0].Triggered != "auto" {
		t.Fatalf("unexpected first transition: %+v", notifier.transitions[0])
	}
	if notifier.transitions[1].To != powerplay.StatusCompleted || notifier.transitions[1].Over != 7 {
		t.Fatalf("unexpected second transition: %+v", notifier.transitions[1])
	}

	records, err := service.ListByMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("list powerplays: %v", err)
	}
	for _, record := range records {
		if record.ID != "pp-ind-pak-1" {
			continue
		}
		if record.Status != powerplay.StatusCompleted {
			t.Fatalf("expected completed, got %s", record.Status)
		}
		if record.ActivatedAt == nil || record.CompletedAt == nil {
			t.Fatalf("expected activation and completion timestamps, got %+v", record)
		}
	}
}

func TestPowerplayService_Activate_CompletesOtherActive(t *testing.T) {
	notifier := &capturingNotifier{}
	service := newPowerplayServiceForTest(notifier)

	ctx := t.Context()
	matchID := memory.MatchIDIndPakT20

	second, err := service.Create(ctx, matchID, CreatePowerplayInput{
		Type:                     powerplay.TypeBattingOptional,
		Innings:                  1,
		StartOver:                11,
		EndOver:                  16,
		MaxFieldersOutsideCircle: 4,
	})
	if err != nil {
		t.Fatalf("create batting powerplay: %v", err)
	}

	if _, err := service.Activate(ctx, matchID, "pp-ind-pak-1"); err != nil {
		t.Fatalf("activate mandatory powerplay: %v", err)
	}

	activated, err := service.Activate(ctx, matchID, second.ID)
	if err != nil {
		t.Fatalf("activate batting powerplay: %v", err)
	}
	if activated.Status != powerplay.StatusActive {
		t.Fatalf("expected active, got %s", activated.Status)
	}

	view, err := service.Current(ctx, matchID)
	if err != nil {
		t.Fatalf("current view: %v", err)
	}
	if view.RecordID != second.ID {
		t.Fatalf("expected %s active, got %+v", second.ID, view)
	}

	records, err := service.ListByMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("list powerplays: %v", err)
	}
	for _, record := range records {
		if record.ID == "pp-ind-pak-1" && record.Status != powerplay.StatusCompleted {
			t.Fatalf("expected previous active record completed, got %s", record.Status)
		}
	}

	if _, err := service.Activate(ctx, matchID, "pp-ind-pak-1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("completed record must not reactivate, got %v", err)
	}
}

func TestPowerplayService_Deactivate(t *testing.T) {
	service := newPowerplayServiceForTest(nil)
	ctx := t.Context()
	matchID := memory.MatchIDIndPakT20

	if _, err := service.Deactivate(ctx, matchID, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound with nothing active, got %v", err)
	}

	if _, err := service.Activate(ctx, matchID, "pp-ind-pak-1"); err != nil {
		t.Fatalf("activate: %v", err)
	}

	completed, err := service.Deactivate(ctx, matchID, 1)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if completed.Status != powerplay.StatusCompleted {
		t.Fatalf("expected completed, got %s", completed.Status)
	}
}

func TestPowerplayService_Create_Validation(t *testing.T) {
	service := newPowerplayServiceForTest(nil)
	ctx := t.Context()
	matchID := memory.MatchIDIndPakT20

	cases := []struct {
		name  string
		input CreatePowerplayInput
	}{
		{"unknown type", CreatePowerplayInput{Type: "SUPER", Innings: 1, StartOver: 1, EndOver: 6, MaxFieldersOutsideCircle: 2}},
		{"zero innings", CreatePowerplayInput{Type: powerplay.TypeMandatory, Innings: 0, StartOver: 1, EndOver: 6, MaxFieldersOutsideCircle: 2}},
		{"inverted window", CreatePowerplayInput{Type: powerplay.TypeMandatory, Innings: 1, StartOver: 6, EndOver: 3, MaxFieldersOutsideCircle: 2}},
		{"too many fielders", CreatePowerplayInput{Type: powerplay.TypeMandatory, Innings: 1, StartOver: 1, EndOver: 6, MaxFieldersOutsideCircle: 6}},
		{"window beyond t20 innings", CreatePowerplayInput{Type: powerplay.TypeBowlingOptional, Innings: 1, StartOver: 18, EndOver: 25, MaxFieldersOutsideCircle: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Create(ctx, matchID, tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if _, err := service.Create(ctx, "missing-match", CreatePowerplayInput{
		Type: powerplay.TypeMandatory, Innings: 1, StartOver: 1, EndOver: 6, MaxFieldersOutsideCircle: 2,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
}

func TestPowerplayService_Update_WindowLockedAfterActivation(t *testing.T) {
	service := newPowerplayServiceForTest(nil)
	ctx := t.Context()
	matchID := memory.MatchIDIndPakT20

	if _, err := service.Activate(ctx, matchID, "pp-ind-pak-1"); err != nil {
		t.Fatalf("activate: %v", err)
	}

	endOver := 8
	if _, err := service.Update(ctx, matchID, "pp-ind-pak-1", UpdatePowerplayInput{EndOver: &endOver}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected window edit rejected on active record, got %v", err)
	}

	description := "extended restriction"
	updated, err := service.Update(ctx, matchID, "pp-ind-pak-1", UpdatePowerplayInput{Description: &description})
	if err != nil {
		t.Fatalf("metadata edit should pass on active record: %v", err)
	}
	if updated.Description != description {
		t.Fatalf("unexpected description: %q", updated.Description)
	}
}

func TestPowerplayService_ApplyBall_AccumulatesStats(t *testing.T) {
	service := newPowerplayServiceForTest(nil)
	ctx := t.Context()
	matchID := memory.MatchIDIndPakT20

	if _, err := service.Activate(ctx, matchID, "pp-ind-pak-1"); err != nil {
		t.Fatalf("activate: %v", err)
	}

	balls := []commentary.BallEvent{
		{MatchID: matchID, Innings: 1, Over: 1, BallInOver: 1, Runs: 4},
		{MatchID: matchID, Innings: 1, Over: 1, BallInOver: 2, Runs: 6},
		{MatchID: matchID, Innings: 1, Over: 1, BallInOver: 3, Runs: 0, Extras: 1, ExtraType: commentary.ExtraWide},
		{MatchID: matchID, Innings: 1, Over: 1, BallInOver: 3, Wicket: true, DismissalType: commentary.DismissalBowled},
	}
	for _, ball := range balls {
		if err := service.ApplyBall(ctx, ball); err != nil {
			t.Fatalf("apply ball: %v", err)
		}
	}

	records, err := service.ListByMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("list powerplays: %v", err)
	}

	var stats powerplay.Stats
	for _, record := range records {
		if record.ID == "pp-ind-pak-1" {
			stats = record.Stats
		}
	}

	if stats.Runs != 11 {
		t.Fatalf("expected 11 runs, got %d", stats.Runs)
	}
	if stats.Wickets != 1 {
		t.Fatalf("expected 1 wicket, got %d", stats.Wickets)
	}
	if stats.Boundaries != 1 || stats.Sixes != 1 {
		t.Fatalf("expected one four and one six, got %+v", stats)
	}
	if stats.OversCompleted <= 0 || stats.RunRate <= 0 {
		t.Fatalf("expected progress derived from deliveries, got %+v", stats)
	}
}

func TestPowerplayService_OverrideCurrentOver(t *testing.T) {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	ppRepo := memory.NewPowerplayRepository(memory.SeedPowerplays())
	service := NewPowerplayService(matchRepo, ppRepo, &sequenceIDGenerator{prefix: "pp"}, nil, nil, logging.NewNop())

	ctx := t.Context()
	matchID := memory.MatchIDIndPakT20

	result, err := service.OverrideCurrentOver(ctx, matchID, 1, 4)
	if err != nil {
		t.Fatalf("override current over: %v", err)
	}
	if len(result.ActivatedRecordIDs) != 1 {
		t.Fatalf("expected auto-activation inside the window, got %+v", result)
	}

	m, exists, err := matchRepo.GetByID(ctx, matchID)
	if err != nil || !exists {
		t.Fatalf("get match: exists=%t err=%v", exists, err)
	}
	if m.CurrentInnings != 1 || m.CurrentOver != 4 {
		t.Fatalf("expected match position 1/4, got %d/%d", m.CurrentInnings, m.CurrentOver)
	}

	if _, err := service.OverrideCurrentOver(ctx, matchID, 1, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative over, got %v", err)
	}
}

func TestPowerplayService_Delete_LeavesOtherRecordsAddressable(t *testing.T) {
	service := newPowerplayServiceForTest(nil)
	ctx := t.Context()
	matchID := memory.MatchIDIndPakT20

	first, err := service.Create(ctx, matchID, CreatePowerplayInput{
		Type:                     powerplay.TypeBattingOptional,
		Innings:                  1,
		StartOver:                8,
		EndOver:                  10,
		MaxFieldersOutsideCircle: 4,
	})
	if err != nil {
		t.Fatalf("create first record: %v", err)
	}
	second, err := service.Create(ctx, matchID, CreatePowerplayInput{
		Type:                     powerplay.TypeBattingOptional,
		Innings:                  1,
		StartOver:                12,
		EndOver:                  14,
		MaxFieldersOutsideCircle: 4,
	})
	if err != nil {
		t.Fatalf("create second record: %v", err)
	}

	if err := service.Delete(ctx, matchID, first.ID); err != nil {
		t.Fatalf("delete record: %v", err)
	}
	if err := service.Delete(ctx, matchID, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeated delete, got %v", err)
	}

	// The surviving record keeps its identity for mutations.
	activated, err := service.Activate(ctx, matchID, second.ID)
	if err != nil {
		t.Fatalf("activate surviving record: %v", err)
	}
	if activated.ID != second.ID || activated.Status != powerplay.StatusActive {
		t.Fatalf("unexpected activated record: %+v", activated)
	}

	records, err := service.ListByMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	for _, record := range records {
		if record.ID == first.ID {
			t.Fatalf("deleted record still listed: %+v", record)
		}
	}
}
