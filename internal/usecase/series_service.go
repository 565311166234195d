package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldcircle/cricket-admin/internal/domain/series"
	"github.com/fieldcircle/cricket-admin/internal/domain/tournament"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
)

type CreateSeriesInput struct {
	TournamentID string
	Name         string
	Format       string
	MatchCount   int
}

type UpdateSeriesInput struct {
	Name       *string
	Format     *string
	MatchCount *int
}

type SeriesService struct {
	seriesRepo     series.Repository
	tournamentRepo tournament.Repository
	ids            idgen.Generator
}

func NewSeriesService(seriesRepo series.Repository, tournamentRepo tournament.Repository, ids idgen.Generator) *SeriesService {
	return &SeriesService{seriesRepo: seriesRepo, tournamentRepo: tournamentRepo, ids: ids}
}

func (s *SeriesService) Create(ctx context.Context, input CreateSeriesInput) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Create")
	defer span.End()

	tournamentID := strings.TrimSpace(input.TournamentID)
	name := strings.TrimSpace(input.Name)
	if tournamentID == "" {
		return series.Series{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if name == "" {
		return series.Series{}, fmt.Errorf("%w: series name is required", ErrInvalidInput)
	}
	if input.MatchCount < 1 {
		return series.Series{}, fmt.Errorf("%w: series must contain at least one match", ErrInvalidInput)
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return series.Series{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return series.Series{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return series.Series{}, fmt.Errorf("new series id: %w", err)
	}

	item := series.Series{
		ID:           id,
		TournamentID: tournamentID,
		Name:         name,
		Format:       strings.ToUpper(strings.TrimSpace(input.Format)),
		MatchCount:   input.MatchCount,
	}

	if err := s.seriesRepo.Create(ctx, item); err != nil {
		return series.Series{}, fmt.Errorf("create series: %w", err)
	}

	return item, nil
}

func (s *SeriesService) Update(ctx context.Context, seriesID string, input UpdateSeriesInput) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, seriesID)
	if err != nil {
		return series.Series{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return series.Series{}, fmt.Errorf("%w: series name cannot be empty", ErrInvalidInput)
		}
		item.Name = name
	}
	if input.Format != nil {
		item.Format = strings.ToUpper(strings.TrimSpace(*input.Format))
	}
	if input.MatchCount != nil {
		if *input.MatchCount < 1 {
			return series.Series{}, fmt.Errorf("%w: series must contain at least one match", ErrInvalidInput)
		}
		item.MatchCount = *input.MatchCount
	}

	if err := s.seriesRepo.Update(ctx, item); err != nil {
		return series.Series{}, fmt.Errorf("update series: %w", err)
	}

	return item, nil
}

func (s *SeriesService) GetByID(ctx context.Context, seriesID string) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.GetByID")
	defer span.End()

	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		return series.Series{}, fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return series.Series{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return series.Series{}, fmt.Errorf("%w: series=%s", ErrNotFound, seriesID)
	}

	return item, nil
}

func (s *SeriesService) List(ctx context.Context) ([]series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.List")
	defer span.End()

	items, err := s.seriesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return items, nil
}

func (s *SeriesService) ListByTournament(ctx context.Context, tournamentID string) ([]series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.ListByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	items, err := s.seriesRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list series by tournament: %w", err)
	}
	return items, nil
}

func (s *SeriesService) Delete(ctx context.Context, seriesID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, seriesID); err != nil {
		return err
	}
	if err := s.seriesRepo.Delete(ctx, strings.TrimSpace(seriesID)); err != nil {
		return fmt.Errorf("delete series: %w", err)
	}
	return nil
}
