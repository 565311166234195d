package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/domain/series"
	"github.com/fieldcircle/cricket-admin/internal/domain/team"
	"github.com/fieldcircle/cricket-admin/internal/domain/tournament"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
)

type CreateMatchInput struct {
	TournamentID string
	SeriesID     string
	HomeTeamID   string
	AwayTeamID   string
	Format       string
	Venue        string
	StartAt      time.Time
	FeedRefID    int64
}

type UpdateMatchInput struct {
	Status           *string
	Venue            *string
	StartAt          *time.Time
	TossWinnerTeamID *string
	TossDecision     *string
	ResultSummary    *string
}

type MatchService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	tournamentRepo tournament.Repository
	seriesRepo     series.Repository
	ids            idgen.Generator
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	tournamentRepo tournament.Repository,
	seriesRepo series.Repository,
	ids idgen.Generator,
) *MatchService {
	return &MatchService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		seriesRepo:     seriesRepo,
		ids:            ids,
	}
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	input.TournamentID = strings.TrimSpace(input.TournamentID)
	input.SeriesID = strings.TrimSpace(input.SeriesID)
	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)

	format := match.NormalizeFormat(input.Format)
	if !match.IsValidFormat(format) {
		return match.Match{}, fmt.Errorf("%w: unknown match format %q", ErrInvalidInput, input.Format)
	}
	if input.HomeTeamID == "" || input.AwayTeamID == "" {
		return match.Match{}, fmt.Errorf("%w: home and away team ids are required", ErrInvalidInput)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return match.Match{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}
	if input.StartAt.IsZero() {
		return match.Match{}, fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if err := s.requireTeam(ctx, input.HomeTeamID); err != nil {
		return match.Match{}, err
	}
	if err := s.requireTeam(ctx, input.AwayTeamID); err != nil {
		return match.Match{}, err
	}
	if input.TournamentID != "" {
		_, exists, err := s.tournamentRepo.GetByID(ctx, input.TournamentID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get tournament: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, input.TournamentID)
		}
	}
	if input.SeriesID != "" {
		_, exists, err := s.seriesRepo.GetByID(ctx, input.SeriesID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get series: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: series=%s", ErrNotFound, input.SeriesID)
		}
	}

	id, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("new match id: %w", err)
	}

	item := match.Match{
		ID:           id,
		TournamentID: input.TournamentID,
		SeriesID:     input.SeriesID,
		HomeTeamID:   input.HomeTeamID,
		AwayTeamID:   input.AwayTeamID,
		Format:       format,
		Status:       match.StatusScheduled,
		Venue:        strings.TrimSpace(input.Venue),
		StartAt:      input.StartAt,
		FeedRefID:    input.FeedRefID,
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return item, nil
}

func (s *MatchService) Update(ctx context.Context, matchID string, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	if input.Status != nil {
		status := match.NormalizeStatus(*input.Status)
		if !match.IsValidStatus(status) {
			return match.Match{}, fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, *input.Status)
		}
		if item.Status == match.StatusCompleted && status != match.StatusCompleted {
			return match.Match{}, fmt.Errorf("%w: completed match cannot change status", ErrInvalidInput)
		}
		if status == match.StatusLive && item.CurrentInnings == 0 {
			item.CurrentInnings = 1
		}
		item.Status = status
	}
	if input.Venue != nil {
		item.Venue = strings.TrimSpace(*input.Venue)
	}
	if input.StartAt != nil {
		item.StartAt = *input.StartAt
	}
	if input.TossWinnerTeamID != nil {
		winner := strings.TrimSpace(*input.TossWinnerTeamID)
		if winner != "" && winner != item.HomeTeamID && winner != item.AwayTeamID {
			return match.Match{}, fmt.Errorf("%w: toss winner must be one of the playing teams", ErrInvalidInput)
		}
		item.TossWinnerTeamID = winner
	}
	if input.TossDecision != nil {
		decision := strings.ToUpper(strings.TrimSpace(*input.TossDecision))
		if decision != "" && decision != match.TossDecisionBat && decision != match.TossDecisionBowl {
			return match.Match{}, fmt.Errorf("%w: toss decision must be BAT or BOWL", ErrInvalidInput)
		}
		item.TossDecision = decision
	}
	if input.ResultSummary != nil {
		item.ResultSummary = strings.TrimSpace(*input.ResultSummary)
	}

	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	return item, nil
}

func (s *MatchService) GetByID(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) ListLive(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListLive")
	defer span.End()

	items, err := s.matchRepo.ListByStatus(ctx, match.StatusLive)
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, matchID); err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, strings.TrimSpace(matchID)); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func (s *MatchService) requireTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}
