package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldcircle/cricket-admin/internal/domain/player"
	"github.com/fieldcircle/cricket-admin/internal/domain/series"
	"github.com/fieldcircle/cricket-admin/internal/domain/squad"
	"github.com/fieldcircle/cricket-admin/internal/domain/team"
	idgen "github.com/fieldcircle/cricket-admin/internal/platform/id"
)

const (
	squadMinPlayers = 11
	squadMaxPlayers = 18
)

type UpsertSquadInput struct {
	TeamID         string
	SeriesID       string
	Name           string
	PlayerIDs      []string
	CaptainID      string
	WicketKeeperID string
}

type SquadService struct {
	squadRepo  squad.Repository
	teamRepo   team.Repository
	seriesRepo series.Repository
	playerRepo player.Repository
	ids        idgen.Generator
}

func NewSquadService(
	squadRepo squad.Repository,
	teamRepo team.Repository,
	seriesRepo series.Repository,
	playerRepo player.Repository,
	ids idgen.Generator,
) *SquadService {
	return &SquadService{
		squadRepo:  squadRepo,
		teamRepo:   teamRepo,
		seriesRepo: seriesRepo,
		playerRepo: playerRepo,
		ids:        ids,
	}
}

func (s *SquadService) Create(ctx context.Context, input UpsertSquadInput) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.Create")
	defer span.End()

	item, err := s.buildSquad(ctx, input)
	if err != nil {
		return squad.Squad{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return squad.Squad{}, fmt.Errorf("new squad id: %w", err)
	}
	item.ID = id

	if err := s.squadRepo.Create(ctx, item); err != nil {
		return squad.Squad{}, fmt.Errorf("create squad: %w", err)
	}

	return item, nil
}

func (s *SquadService) Update(ctx context.Context, squadID string, input UpsertSquadInput) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.Update")
	defer span.End()

	existing, err := s.GetByID(ctx, squadID)
	if err != nil {
		return squad.Squad{}, err
	}

	item, err := s.buildSquad(ctx, input)
	if err != nil {
		return squad.Squad{}, err
	}
	item.ID = existing.ID

	if err := s.squadRepo.Update(ctx, item); err != nil {
		return squad.Squad{}, fmt.Errorf("update squad: %w", err)
	}

	return item, nil
}

func (s *SquadService) GetByID(ctx context.Context, squadID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetByID")
	defer span.End()

	squadID = strings.TrimSpace(squadID)
	if squadID == "" {
		return squad.Squad{}, fmt.Errorf("%w: squad id is required", ErrInvalidInput)
	}

	item, exists, err := s.squadRepo.GetByID(ctx, squadID)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: squad=%s", ErrNotFound, squadID)
	}

	return item, nil
}

func (s *SquadService) ListBySeries(ctx context.Context, seriesID string) ([]squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.ListBySeries")
	defer span.End()

	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		return nil, fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}

	items, err := s.squadRepo.ListBySeries(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list squads by series: %w", err)
	}
	return items, nil
}

func (s *SquadService) Delete(ctx context.Context, squadID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, squadID); err != nil {
		return err
	}
	if err := s.squadRepo.Delete(ctx, strings.TrimSpace(squadID)); err != nil {
		return fmt.Errorf("delete squad: %w", err)
	}
	return nil
}

func (s *SquadService) buildSquad(ctx context.Context, input UpsertSquadInput) (squad.Squad, error) {
	teamID := strings.TrimSpace(input.TeamID)
	seriesID := strings.TrimSpace(input.SeriesID)
	captainID := strings.TrimSpace(input.CaptainID)
	keeperID := strings.TrimSpace(input.WicketKeeperID)

	if teamID == "" {
		return squad.Squad{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if seriesID == "" {
		return squad.Squad{}, fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}
	if len(input.PlayerIDs) < squadMinPlayers || len(input.PlayerIDs) > squadMaxPlayers {
		return squad.Squad{}, fmt.Errorf("%w: squad must contain between %d and %d players", ErrInvalidInput, squadMinPlayers, squadMaxPlayers)
	}

	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return squad.Squad{}, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return squad.Squad{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	if _, exists, err := s.seriesRepo.GetByID(ctx, seriesID); err != nil {
		return squad.Squad{}, fmt.Errorf("get series: %w", err)
	} else if !exists {
		return squad.Squad{}, fmt.Errorf("%w: series=%s", ErrNotFound, seriesID)
	}

	seen := make(map[string]struct{}, len(input.PlayerIDs))
	playerIDs := make([]string, 0, len(input.PlayerIDs))
	for _, raw := range input.PlayerIDs {
		playerID := strings.TrimSpace(raw)
		if playerID == "" {
			return squad.Squad{}, fmt.Errorf("%w: player id cannot be empty", ErrInvalidInput)
		}
		if _, dup := seen[playerID]; dup {
			return squad.Squad{}, fmt.Errorf("%w: duplicate player id %s", ErrInvalidInput, playerID)
		}
		seen[playerID] = struct{}{}

		item, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return squad.Squad{}, fmt.Errorf("get player: %w", err)
		}
		if !exists {
			return squad.Squad{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		if item.TeamID != teamID {
			return squad.Squad{}, fmt.Errorf("%w: player %s does not belong to team %s", ErrInvalidInput, playerID, teamID)
		}
		playerIDs = append(playerIDs, playerID)
	}

	if captainID != "" {
		if _, ok := seen[captainID]; !ok {
			return squad.Squad{}, fmt.Errorf("%w: captain must be in the squad", ErrInvalidInput)
		}
	}
	if keeperID != "" {
		if _, ok := seen[keeperID]; !ok {
			return squad.Squad{}, fmt.Errorf("%w: wicket keeper must be in the squad", ErrInvalidInput)
		}
	}

	return squad.Squad{
		TeamID:         teamID,
		SeriesID:       seriesID,
		Name:           strings.TrimSpace(input.Name),
		PlayerIDs:      playerIDs,
		CaptainID:      captainID,
		WicketKeeperID: keeperID,
	}, nil
}
