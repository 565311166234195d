package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/infrastructure/repository/memory"
	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
)

func newCommentaryServiceForTest() (*CommentaryService, *memory.MatchRepository) {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	ppRepo := memory.NewPowerplayRepository(memory.SeedPowerplays())
	engine := NewPowerplayService(matchRepo, ppRepo, &sequenceIDGenerator{prefix: "pp"}, nil, nil, logging.NewNop())

	service := NewCommentaryService(
		memory.NewCommentaryRepository(),
		matchRepo,
		memory.NewPlayerRepository(memory.SeedPlayers()),
		engine,
		&sequenceIDGenerator{prefix: "ball"},
		logging.NewNop(),
	)
	return service, matchRepo
}

func TestCommentaryService_RecordBall_UpdatesScore(t *testing.T) {
	service, matchRepo := newCommentaryServiceForTest()
	now := time.Date(2026, 9, 6, 15, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	ctx := t.Context()

	result, err := service.RecordBall(ctx, RecordBallInput{
		MatchID:    memory.MatchIDIndPakT20,
		Innings:    1,
		Over:       0,
		BallInOver: 1,
		BatterID:   "ind-bat-01",
		BowlerID:   "pak-bwl-01",
		Runs:       4,
	})
	if err != nil {
		t.Fatalf("record ball: %v", err)
	}

	if result.Ball.ID != "ball-001" {
		t.Fatalf("unexpected ball id: %s", result.Ball.ID)
	}
	if result.NewOver != 0 {
		t.Fatalf("mid-over delivery must keep the over, got %d", result.NewOver)
	}
	if !result.Ball.CreatedAt.Equal(now) {
		t.Fatalf("expected created at %v, got %v", now, result.Ball.CreatedAt)
	}

	m, _, err := matchRepo.GetByID(ctx, memory.MatchIDIndPakT20)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if len(m.Scores) != 1 || m.Scores[0].Runs != 4 || m.Scores[0].Wickets != 0 {
		t.Fatalf("unexpected scores: %+v", m.Scores)
	}
	if m.Scores[0].Overs != 0.1 {
		t.Fatalf("expected overs 0.1, got %v", m.Scores[0].Overs)
	}
}

func TestCommentaryService_RecordBall_OverCloseDrivesPowerplay(t *testing.T) {
	service, matchRepo := newCommentaryServiceForTest()
	ctx := t.Context()

	// Last legal ball of the opening over moves the match to over 1, which
	// auto-activates the mandatory powerplay window starting there.
	result, err := service.RecordBall(ctx, RecordBallInput{
		MatchID:    memory.MatchIDIndPakT20,
		Innings:    1,
		Over:       0,
		BallInOver: 6,
		BatterID:   "ind-bat-01",
		BowlerID:   "pak-bwl-01",
		Runs:       1,
	})
	if err != nil {
		t.Fatalf("record ball: %v", err)
	}

	if result.NewOver != 1 {
		t.Fatalf("expected over closed to 1, got %d", result.NewOver)
	}
	if len(result.Powerplays.ActivatedRecordIDs) != 1 || result.Powerplays.ActivatedRecordIDs[0] != "pp-ind-pak-1" {
		t.Fatalf("expected mandatory powerplay activated, got %+v", result.Powerplays)
	}

	m, _, err := matchRepo.GetByID(ctx, memory.MatchIDIndPakT20)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if m.CurrentOver != 1 {
		t.Fatalf("expected match current over 1, got %d", m.CurrentOver)
	}
	if m.Scores[0].Overs != 1 {
		t.Fatalf("expected full over notation 1, got %v", m.Scores[0].Overs)
	}
}

func TestCommentaryService_RecordBall_WideDoesNotCloseOver(t *testing.T) {
	service, _ := newCommentaryServiceForTest()
	ctx := t.Context()

	result, err := service.RecordBall(ctx, RecordBallInput{
		MatchID:    memory.MatchIDIndPakT20,
		Innings:    1,
		Over:       0,
		BallInOver: 6,
		BatterID:   "ind-bat-01",
		BowlerID:   "pak-bwl-01",
		Extras:     1,
		ExtraType:  commentary.ExtraWide,
	})
	if err != nil {
		t.Fatalf("record ball: %v", err)
	}

	if result.NewOver != 0 {
		t.Fatalf("wide must not close the over, got %d", result.NewOver)
	}
	if len(result.Powerplays.ActivatedRecordIDs) != 0 {
		t.Fatalf("expected no powerplay transitions, got %+v", result.Powerplays)
	}
}

func TestCommentaryService_RecordBall_Validation(t *testing.T) {
	service, _ := newCommentaryServiceForTest()
	ctx := t.Context()

	base := RecordBallInput{
		MatchID:    memory.MatchIDIndPakT20,
		Innings:    1,
		Over:       0,
		BallInOver: 1,
		BatterID:   "ind-bat-01",
		BowlerID:   "pak-bwl-01",
	}

	cases := []struct {
		name    string
		mutate  func(*RecordBallInput)
		wantErr error
	}{
		{"ball in over too high", func(in *RecordBallInput) { in.BallInOver = 7 }, ErrInvalidInput},
		{"bat runs too high", func(in *RecordBallInput) { in.Runs = 7 }, ErrInvalidInput},
		{"wicket without dismissal", func(in *RecordBallInput) { in.Wicket = true }, ErrInvalidInput},
		{"dismissal without wicket", func(in *RecordBallInput) { in.DismissalType = commentary.DismissalBowled }, ErrInvalidInput},
		{"extra type without runs", func(in *RecordBallInput) { in.ExtraType = commentary.ExtraWide }, ErrInvalidInput},
		{"unknown extra type", func(in *RecordBallInput) { in.ExtraType = "OVERTHROW"; in.Extras = 1 }, ErrInvalidInput},
		{"over beyond t20 innings", func(in *RecordBallInput) { in.Over = 20 }, ErrInvalidInput},
		{"unknown batter", func(in *RecordBallInput) { in.BatterID = "missing" }, ErrNotFound},
		{"unknown match", func(in *RecordBallInput) { in.MatchID = "missing" }, ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			if _, err := service.RecordBall(ctx, input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCommentaryService_RecordBall_RejectsNonLiveMatch(t *testing.T) {
	matchRepo := memory.NewMatchRepository([]match.Match{
		{
			ID:           "match-scheduled",
			TournamentID: memory.TournamentIDAsiaCup,
			HomeTeamID:   memory.TeamIDIndia,
			AwayTeamID:   memory.TeamIDPakistan,
			Format:       match.FormatT20,
			Status:       match.StatusScheduled,
			StartAt:      time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC),
		},
	})
	ppRepo := memory.NewPowerplayRepository(nil)
	engine := NewPowerplayService(matchRepo, ppRepo, &sequenceIDGenerator{prefix: "pp"}, nil, nil, logging.NewNop())
	service := NewCommentaryService(
		memory.NewCommentaryRepository(),
		matchRepo,
		memory.NewPlayerRepository(memory.SeedPlayers()),
		engine,
		&sequenceIDGenerator{prefix: "ball"},
		logging.NewNop(),
	)

	_, err := service.RecordBall(t.Context(), RecordBallInput{
		MatchID:    "match-scheduled",
		Innings:    1,
		Over:       0,
		BallInOver: 1,
		BatterID:   "ind-bat-01",
		BowlerID:   "pak-bwl-01",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-live match, got %v", err)
	}
}

func TestCommentaryService_Latest(t *testing.T) {
	service, _ := newCommentaryServiceForTest()
	ctx := t.Context()

	for ball := 1; ball <= 4; ball++ {
		if _, err := service.RecordBall(ctx, RecordBallInput{
			MatchID:    memory.MatchIDIndPakT20,
			Innings:    1,
			Over:       0,
			BallInOver: ball,
			BatterID:   "ind-bat-01",
			BowlerID:   "pak-bwl-01",
			Runs:       1,
		}); err != nil {
			t.Fatalf("record ball %d: %v", ball, err)
		}
	}

	latest, err := service.Latest(ctx, memory.MatchIDIndPakT20, 2)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(latest) != 2 {
		t.Fatalf("expected 2 events, got %d", len(latest))
	}
	if latest[0].BallInOver != 4 {
		t.Fatalf("expected newest event first, got ball %d", latest[0].BallInOver)
	}
}
