package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldcircle/cricket-admin/internal/domain/player"
	"github.com/fieldcircle/cricket-admin/internal/domain/team"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
)

type CreatePlayerInput struct {
	TeamID       string
	Name         string
	Role         string
	BattingStyle string
	BowlingStyle string
	ShirtNumber  int
}

type UpdatePlayerInput struct {
	TeamID       *string
	Name         *string
	Role         *string
	BattingStyle *string
	BowlingStyle *string
	ShirtNumber  *int
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	ids        idgen.Generator
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, ids idgen.Generator) *PlayerService {
	return &PlayerService{playerRepo: playerRepo, teamRepo: teamRepo, ids: ids}
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	teamID := strings.TrimSpace(input.TeamID)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if teamID == "" {
		return player.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	role := player.NormalizeRole(input.Role)
	if !player.IsValidRole(role) {
		return player.Player{}, fmt.Errorf("%w: unknown player role %q", ErrInvalidInput, input.Role)
	}
	if input.ShirtNumber < 0 || input.ShirtNumber > 99 {
		return player.Player{}, fmt.Errorf("%w: shirt number must be between 0 and 99", ErrInvalidInput)
	}

	if err := s.requireTeam(ctx, teamID); err != nil {
		return player.Player{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("new player id: %w", err)
	}

	item := player.Player{
		ID:           id,
		TeamID:       teamID,
		Name:         name,
		Role:         role,
		BattingStyle: strings.TrimSpace(input.BattingStyle),
		BowlingStyle: strings.TrimSpace(input.BowlingStyle),
		ShirtNumber:  input.ShirtNumber,
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if input.TeamID != nil {
		teamID := strings.TrimSpace(*input.TeamID)
		if teamID == "" {
			return player.Player{}, fmt.Errorf("%w: team id cannot be empty", ErrInvalidInput)
		}
		if err := s.requireTeam(ctx, teamID); err != nil {
			return player.Player{}, err
		}
		item.TeamID = teamID
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return player.Player{}, fmt.Errorf("%w: player name cannot be empty", ErrInvalidInput)
		}
		item.Name = name
	}
	if input.Role != nil {
		role := player.NormalizeRole(*input.Role)
		if !player.IsValidRole(role) {
			return player.Player{}, fmt.Errorf("%w: unknown player role %q", ErrInvalidInput, *input.Role)
		}
		item.Role = role
	}
	if input.BattingStyle != nil {
		item.BattingStyle = strings.TrimSpace(*input.BattingStyle)
	}
	if input.BowlingStyle != nil {
		item.BowlingStyle = strings.TrimSpace(*input.BowlingStyle)
	}
	if input.ShirtNumber != nil {
		if *input.ShirtNumber < 0 || *input.ShirtNumber > 99 {
			return player.Player{}, fmt.Errorf("%w: shirt number must be between 0 and 99", ErrInvalidInput)
		}
		item.ShirtNumber = *input.ShirtNumber
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, playerID); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, strings.TrimSpace(playerID)); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) requireTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}
