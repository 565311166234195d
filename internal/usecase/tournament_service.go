package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fieldcircle/cricket-admin/internal/domain/tournament"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
)

type CreateTournamentInput struct {
	Name    string
	Season  string
	Format  string
	StartAt time.Time
	EndAt   time.Time
}

type UpdateTournamentInput struct {
	Name    *string
	Season  *string
	Status  *string
	StartAt *time.Time
	EndAt   *time.Time
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	ids            idgen.Generator
}

func NewTournamentService(tournamentRepo tournament.Repository, ids idgen.Generator) *TournamentService {
	return &TournamentService{tournamentRepo: tournamentRepo, ids: ids}
}

func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament name is required", ErrInvalidInput)
	}
	if !input.EndAt.IsZero() && !input.StartAt.IsZero() && input.EndAt.Before(input.StartAt) {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament cannot end before it starts", ErrInvalidInput)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("new tournament id: %w", err)
	}

	item := tournament.Tournament{
		ID:      id,
		Name:    name,
		Season:  strings.TrimSpace(input.Season),
		Format:  strings.ToUpper(strings.TrimSpace(input.Format)),
		Status:  tournament.StatusUpcoming,
		StartAt: input.StartAt,
		EndAt:   input.EndAt,
	}

	if err := s.tournamentRepo.Create(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	return item, nil
}

func (s *TournamentService) Update(ctx context.Context, tournamentID string, input UpdateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return tournament.Tournament{}, fmt.Errorf("%w: tournament name cannot be empty", ErrInvalidInput)
		}
		item.Name = name
	}
	if input.Season != nil {
		item.Season = strings.TrimSpace(*input.Season)
	}
	if input.Status != nil {
		status := tournament.NormalizeStatus(*input.Status)
		if !tournament.IsValidStatus(status) {
			return tournament.Tournament{}, fmt.Errorf("%w: unknown tournament status %q", ErrInvalidInput, *input.Status)
		}
		item.Status = status
	}
	if input.StartAt != nil {
		item.StartAt = *input.StartAt
	}
	if input.EndAt != nil {
		item.EndAt = *input.EndAt
	}
	if !item.EndAt.IsZero() && !item.StartAt.IsZero() && item.EndAt.Before(item.StartAt) {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament cannot end before it starts", ErrInvalidInput)
	}

	if err := s.tournamentRepo.Update(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("update tournament: %w", err)
	}

	return item, nil
}

func (s *TournamentService) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GetByID")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	return item, nil
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *TournamentService) Delete(ctx context.Context, tournamentID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, tournamentID); err != nil {
		return err
	}
	if err := s.tournamentRepo.Delete(ctx, strings.TrimSpace(tournamentID)); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	return nil
}
