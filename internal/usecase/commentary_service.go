package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/domain/player"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
)

type RecordBallInput struct {
	MatchID       string
	Innings       int
	Over          int
	BallInOver    int
	BatterID      string
	BowlerID      string
	Runs          int
	Extras        int
	ExtraType     string
	Wicket        bool
	DismissalType string
	Commentary    string
}

// RecordBallResult reports the ball as stored plus any powerplay transitions
// it triggered.
type RecordBallResult struct {
	Ball       commentary.BallEvent
	NewOver    int
	Powerplays AdvanceResult
}

// powerplayEngine is the slice of PowerplayService commentary ingestion needs.
type powerplayEngine interface {
	ApplyBall(ctx context.Context, event commentary.BallEvent) error
	AdvanceOver(ctx context.Context, matchID string, innings, over int) (AdvanceResult, error)
}

type CommentaryService struct {
	commentaryRepo commentary.Repository
	matchRepo      match.Repository
	playerRepo     player.Repository
	engine         powerplayEngine
	ids            idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewCommentaryService(
	commentaryRepo commentary.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	engine powerplayEngine,
	ids idgen.Generator,
	logger *logging.Logger,
) *CommentaryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &CommentaryService{
		commentaryRepo: commentaryRepo,
		matchRepo:      matchRepo,
		playerRepo:     playerRepo,
		engine:         engine,
		ids:            ids,
		logger:         logger,
		now:            time.Now,
	}
}

// RecordBall appends one delivery to the ball-by-ball log, advances the
// match's authoritative over position, and drives the powerplay sweep. A ball
// that closes its over moves the current over to over+1, which is what
// completes a powerplay whose window ended on that over.
func (s *CommentaryService) RecordBall(ctx context.Context, input RecordBallInput) (RecordBallResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommentaryService.RecordBall")
	defer span.End()

	event, err := s.buildEvent(ctx, input)
	if err != nil {
		return RecordBallResult{}, err
	}

	m, exists, err := s.matchRepo.GetByID(ctx, event.MatchID)
	if err != nil {
		return RecordBallResult{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return RecordBallResult{}, fmt.Errorf("%w: match=%s", ErrNotFound, event.MatchID)
	}
	if !match.IsLive(m) {
		return RecordBallResult{}, fmt.Errorf("%w: match %s is not live", ErrInvalidInput, m.ID)
	}
	if cap := match.OversPerInnings(m.Format); cap > 0 && event.Over >= cap {
		return RecordBallResult{}, fmt.Errorf("%w: over %d exceeds %s innings length", ErrInvalidInput, event.Over, m.Format)
	}

	if err := s.commentaryRepo.Create(ctx, event); err != nil {
		return RecordBallResult{}, fmt.Errorf("create ball event: %w", err)
	}

	// Stats first: the delivery belongs to the window that is active while it
	// is bowled, even when it is the last legal ball of that window.
	if err := s.engine.ApplyBall(ctx, event); err != nil {
		return RecordBallResult{}, err
	}

	newOver := event.Over
	overClosed := commentary.IsLegalDelivery(event) && event.BallInOver == commentary.BallsPerOver
	if overClosed {
		newOver = event.Over + 1
	}

	s.applyScore(&m, event, newOver, overClosed)
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return RecordBallResult{}, fmt.Errorf("update match score: %w", err)
	}

	advance, err := s.engine.AdvanceOver(ctx, m.ID, event.Innings, newOver)
	if err != nil {
		return RecordBallResult{}, err
	}

	return RecordBallResult{
		Ball:       event,
		NewOver:    newOver,
		Powerplays: advance,
	}, nil
}

func (s *CommentaryService) ListByMatch(ctx context.Context, matchID string) ([]commentary.BallEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommentaryService.ListByMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	items, err := s.commentaryRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list ball events: %w", err)
	}
	return items, nil
}

func (s *CommentaryService) ListByMatchInnings(ctx context.Context, matchID string, innings int) ([]commentary.BallEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommentaryService.ListByMatchInnings")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if innings < 1 {
		return nil, fmt.Errorf("%w: innings must be >= 1", ErrInvalidInput)
	}

	items, err := s.commentaryRepo.ListByMatchInnings(ctx, matchID, innings)
	if err != nil {
		return nil, fmt.Errorf("list ball events: %w", err)
	}
	return items, nil
}

func (s *CommentaryService) Latest(ctx context.Context, matchID string, limit int) ([]commentary.BallEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommentaryService.Latest")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 12
	}

	items, err := s.commentaryRepo.LatestByMatch(ctx, matchID, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest ball events: %w", err)
	}
	return items, nil
}

func (s *CommentaryService) buildEvent(ctx context.Context, input RecordBallInput) (commentary.BallEvent, error) {
	matchID := strings.TrimSpace(input.MatchID)
	batterID := strings.TrimSpace(input.BatterID)
	bowlerID := strings.TrimSpace(input.BowlerID)

	if matchID == "" {
		return commentary.BallEvent{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.Innings < 1 {
		return commentary.BallEvent{}, fmt.Errorf("%w: innings must be >= 1", ErrInvalidInput)
	}
	if input.Over < 0 {
		return commentary.BallEvent{}, fmt.Errorf("%w: over cannot be negative", ErrInvalidInput)
	}
	if input.BallInOver < 1 || input.BallInOver > commentary.BallsPerOver {
		return commentary.BallEvent{}, fmt.Errorf("%w: ball in over must be between 1 and %d", ErrInvalidInput, commentary.BallsPerOver)
	}
	if input.Runs < 0 || input.Runs > 6 {
		return commentary.BallEvent{}, fmt.Errorf("%w: bat runs must be between 0 and 6", ErrInvalidInput)
	}
	if input.Extras < 0 {
		return commentary.BallEvent{}, fmt.Errorf("%w: extras cannot be negative", ErrInvalidInput)
	}

	extraType := commentary.NormalizeExtraType(input.ExtraType)
	if !commentary.IsValidExtraType(extraType) {
		return commentary.BallEvent{}, fmt.Errorf("%w: unknown extra type %q", ErrInvalidInput, input.ExtraType)
	}
	if extraType != commentary.ExtraNone && input.Extras == 0 {
		return commentary.BallEvent{}, fmt.Errorf("%w: extra type %s requires extra runs", ErrInvalidInput, extraType)
	}

	dismissal := commentary.NormalizeDismissalType(input.DismissalType)
	if input.Wicket {
		if dismissal == "" || !commentary.IsValidDismissalType(dismissal) {
			return commentary.BallEvent{}, fmt.Errorf("%w: wicket requires a valid dismissal type", ErrInvalidInput)
		}
	} else if dismissal != "" {
		return commentary.BallEvent{}, fmt.Errorf("%w: dismissal type set without a wicket", ErrInvalidInput)
	}

	if err := s.requirePlayer(ctx, batterID, "batter"); err != nil {
		return commentary.BallEvent{}, err
	}
	if err := s.requirePlayer(ctx, bowlerID, "bowler"); err != nil {
		return commentary.BallEvent{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return commentary.BallEvent{}, fmt.Errorf("new ball event id: %w", err)
	}

	return commentary.BallEvent{
		ID:            id,
		MatchID:       matchID,
		Innings:       input.Innings,
		Over:          input.Over,
		BallInOver:    input.BallInOver,
		BatterID:      batterID,
		BowlerID:      bowlerID,
		Runs:          input.Runs,
		Extras:        input.Extras,
		ExtraType:     extraType,
		Wicket:        input.Wicket,
		DismissalType: dismissal,
		Commentary:    strings.TrimSpace(input.Commentary),
		CreatedAt:     s.now(),
	}, nil
}

func (s *CommentaryService) requirePlayer(ctx context.Context, playerID, role string) error {
	if playerID == "" {
		return fmt.Errorf("%w: %s id is required", ErrInvalidInput, role)
	}
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get %s: %w", role, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s=%s", ErrNotFound, role, playerID)
	}
	return nil
}

func (s *CommentaryService) applyScore(m *match.Match, event commentary.BallEvent, newOver int, overClosed bool) {
	m.CurrentInnings = event.Innings
	m.CurrentOver = newOver

	for i := range m.Scores {
		if m.Scores[i].Innings != event.Innings {
			continue
		}
		m.Scores[i].Runs += commentary.TotalRuns(event)
		if event.Wicket {
			m.Scores[i].Wickets++
		}
		m.Scores[i].Overs = oversValue(event, overClosed)
		return
	}

	score := match.InningsScore{
		Innings: event.Innings,
		Runs:    commentary.TotalRuns(event),
	}
	if event.Wicket {
		score.Wickets = 1
	}
	score.Overs = oversValue(event, overClosed)
	m.Scores = append(m.Scores, score)
}

// oversValue renders the cricket "overs" notation value, e.g. 4.3 after the
// third legal ball of the fifth over.
func oversValue(event commentary.BallEvent, overClosed bool) float64 {
	if overClosed {
		return float64(event.Over + 1)
	}
	return float64(event.Over) + float64(event.BallInOver)/10
}
