package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
	"github.com/fieldcircle/cricket-admin/internal/domain/team"
)

const dashboardRecentBalls = 12

// MatchDashboard is the aggregate the scoring console renders: match header,
// both teams, the full powerplay list, the current view, and the latest
// deliveries.
type MatchDashboard struct {
	Match       match.Match            `json:"match"`
	HomeTeam    team.Team              `json:"home_team"`
	AwayTeam    team.Team              `json:"away_team"`
	Powerplays  []powerplay.Record     `json:"powerplays"`
	Current     powerplay.CurrentView  `json:"current_powerplay"`
	RecentBalls []commentary.BallEvent `json:"recent_balls"`
}

type powerplayReader interface {
	ListByMatch(ctx context.Context, matchID string) ([]powerplay.Record, error)
	Current(ctx context.Context, matchID string) (powerplay.CurrentView, error)
}

type DashboardService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	commentaryRepo commentary.Repository
	powerplays     powerplayReader
}

func NewDashboardService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	commentaryRepo commentary.Repository,
	powerplays powerplayReader,
) *DashboardService {
	return &DashboardService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		commentaryRepo: commentaryRepo,
		powerplays:     powerplays,
	}
}

// MatchDashboard fans out the four reads concurrently; the first failure
// cancels the rest.
func (s *DashboardService) MatchDashboard(ctx context.Context, matchID string) (MatchDashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.MatchDashboard")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchDashboard{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDashboard{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchDashboard{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	dashboard := MatchDashboard{Match: m}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		item, exists, err := s.teamRepo.GetByID(ctx, m.HomeTeamID)
		if err != nil {
			return fmt.Errorf("get home team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, m.HomeTeamID)
		}
		dashboard.HomeTeam = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		item, exists, err := s.teamRepo.GetByID(ctx, m.AwayTeamID)
		if err != nil {
			return fmt.Errorf("get away team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, m.AwayTeamID)
		}
		dashboard.AwayTeam = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		records, err := s.powerplays.ListByMatch(ctx, matchID)
		if err != nil {
			return err
		}
		dashboard.Powerplays = records
		return nil
	})
	p.Go(func(ctx context.Context) error {
		view, err := s.powerplays.Current(ctx, matchID)
		if err != nil {
			return err
		}
		dashboard.Current = view
		return nil
	})
	p.Go(func(ctx context.Context) error {
		balls, err := s.commentaryRepo.LatestByMatch(ctx, matchID, dashboardRecentBalls)
		if err != nil {
			return fmt.Errorf("list latest ball events: %w", err)
		}
		dashboard.RecentBalls = balls
		return nil
	})

	if err := p.Wait(); err != nil {
		return MatchDashboard{}, err
	}

	return dashboard, nil
}
