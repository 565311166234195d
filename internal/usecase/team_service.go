package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldcircle/cricket-admin/internal/domain/team"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
)

type CreateTeamInput struct {
	Name      string
	ShortName string
	Country   string
	LogoURL   string
}

type UpdateTeamInput struct {
	Name      *string
	ShortName *string
	Country   *string
	LogoURL   *string
}

type TeamService struct {
	teamRepo team.Repository
	ids      idgen.Generator
}

func NewTeamService(teamRepo team.Repository, ids idgen.Generator) *TeamService {
	return &TeamService{teamRepo: teamRepo, ids: ids}
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("new team id: %w", err)
	}

	item := team.Team{
		ID:        id,
		Name:      name,
		ShortName: strings.TrimSpace(input.ShortName),
		Country:   strings.TrimSpace(input.Country),
		LogoURL:   strings.TrimSpace(input.LogoURL),
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return item, nil
}

func (s *TeamService) Update(ctx context.Context, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return team.Team{}, fmt.Errorf("%w: team name cannot be empty", ErrInvalidInput)
		}
		item.Name = name
	}
	if input.ShortName != nil {
		item.ShortName = strings.TrimSpace(*input.ShortName)
	}
	if input.Country != nil {
		item.Country = strings.TrimSpace(*input.Country)
	}
	if input.LogoURL != nil {
		item.LogoURL = strings.TrimSpace(*input.LogoURL)
	}

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return item, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, teamID); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, strings.TrimSpace(teamID)); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}
