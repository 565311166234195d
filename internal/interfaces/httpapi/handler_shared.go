package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/domain/player"
	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
	"github.com/fieldcircle/cricket-admin/internal/domain/series"
	"github.com/fieldcircle/cricket-admin/internal/domain/squad"
	"github.com/fieldcircle/cricket-admin/internal/domain/team"
	"github.com/fieldcircle/cricket-admin/internal/domain/tournament"
	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

type Handler struct {
	tournamentService *usecase.TournamentService
	seriesService     *usecase.SeriesService
	teamService       *usecase.TeamService
	playerService     *usecase.PlayerService
	matchService      *usecase.MatchService
	squadService      *usecase.SquadService
	powerplayService  *usecase.PowerplayService
	commentaryService *usecase.CommentaryService
	dashboardService  *usecase.DashboardService
	liveSyncService   *usecase.LiveSyncService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	seriesService *usecase.SeriesService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	squadService *usecase.SquadService,
	powerplayService *usecase.PowerplayService,
	commentaryService *usecase.CommentaryService,
	dashboardService *usecase.DashboardService,
	liveSyncService *usecase.LiveSyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tournamentService: tournamentService,
		seriesService:     seriesService,
		teamService:       teamService,
		playerService:     playerService,
		matchService:      matchService,
		squadService:      squadService,
		powerplayService:  powerplayService,
		commentaryService: commentaryService,
		dashboardService:  dashboardService,
		liveSyncService:   liveSyncService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type createTournamentRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Season  string `json:"season" validate:"omitempty,max=20"`
	Format  string `json:"format" validate:"omitempty,max=20"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

type updateTournamentRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=120"`
	Season  *string `json:"season" validate:"omitempty,max=20"`
	Status  *string `json:"status"`
	StartAt *string `json:"start_at"`
	EndAt   *string `json:"end_at"`
}

type createSeriesRequest struct {
	TournamentID string `json:"tournament_id" validate:"required"`
	Name         string `json:"name" validate:"required,max=120"`
	Format       string `json:"format" validate:"omitempty,max=20"`
	MatchCount   int    `json:"match_count" validate:"required,gt=0"`
}

type updateSeriesRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=120"`
	Format     *string `json:"format" validate:"omitempty,max=20"`
	MatchCount *int    `json:"match_count" validate:"omitempty,gt=0"`
}

type createTeamRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	ShortName string `json:"short_name" validate:"omitempty,max=10"`
	Country   string `json:"country" validate:"omitempty,max=60"`
	LogoURL   string `json:"logo_url" validate:"omitempty,max=500"`
}

type updateTeamRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=120"`
	ShortName *string `json:"short_name" validate:"omitempty,max=10"`
	Country   *string `json:"country" validate:"omitempty,max=60"`
	LogoURL   *string `json:"logo_url" validate:"omitempty,max=500"`
}

type createPlayerRequest struct {
	TeamID       string `json:"team_id" validate:"required"`
	Name         string `json:"name" validate:"required,max=120"`
	Role         string `json:"role" validate:"required"`
	BattingStyle string `json:"batting_style" validate:"omitempty,max=40"`
	BowlingStyle string `json:"bowling_style" validate:"omitempty,max=40"`
	ShirtNumber  int    `json:"shirt_number" validate:"gte=0,lte=99"`
}

type updatePlayerRequest struct {
	TeamID       *string `json:"team_id"`
	Name         *string `json:"name" validate:"omitempty,max=120"`
	Role         *string `json:"role"`
	BattingStyle *string `json:"batting_style" validate:"omitempty,max=40"`
	BowlingStyle *string `json:"bowling_style" validate:"omitempty,max=40"`
	ShirtNumber  *int    `json:"shirt_number" validate:"omitempty,gte=0,lte=99"`
}

type createMatchRequest struct {
	TournamentID string `json:"tournament_id"`
	SeriesID     string `json:"series_id"`
	HomeTeamID   string `json:"home_team_id" validate:"required"`
	AwayTeamID   string `json:"away_team_id" validate:"required"`
	Format       string `json:"format" validate:"required"`
	Venue        string `json:"venue" validate:"omitempty,max=200"`
	StartAt      string `json:"start_at" validate:"required"`
	FeedRefID    int64  `json:"feed_ref_id" validate:"omitempty,gt=0"`
}

type updateMatchRequest struct {
	Status           *string `json:"status"`
	Venue            *string `json:"venue" validate:"omitempty,max=200"`
	StartAt          *string `json:"start_at"`
	TossWinnerTeamID *string `json:"toss_winner_team_id"`
	TossDecision     *string `json:"toss_decision"`
	ResultSummary    *string `json:"result_summary" validate:"omitempty,max=500"`
}

type upsertSquadRequest struct {
	TeamID         string   `json:"team_id" validate:"required"`
	SeriesID       string   `json:"series_id" validate:"required"`
	Name           string   `json:"name" validate:"omitempty,max=120"`
	PlayerIDs      []string `json:"player_ids" validate:"required,min=11,max=18,dive,required"`
	CaptainID      string   `json:"captain_id" validate:"required"`
	WicketKeeperID string   `json:"wicket_keeper_id" validate:"required"`
}

type createPowerplayRequest struct {
	Type                     string `json:"type" validate:"required"`
	Innings                  int    `json:"innings" validate:"required,gt=0"`
	StartOver                int    `json:"start_over" validate:"required,gte=1"`
	EndOver                  int    `json:"end_over" validate:"required,gt=0"`
	MaxFieldersOutsideCircle int    `json:"max_fielders_outside_circle" validate:"required,gte=2,lte=5"`
	IsMandatory              bool   `json:"is_mandatory"`
	Description              string `json:"description" validate:"omitempty,max=300"`
}

type updatePowerplayRequest struct {
	Type                     *string `json:"type"`
	StartOver                *int    `json:"start_over" validate:"omitempty,gte=1"`
	EndOver                  *int    `json:"end_over" validate:"omitempty,gt=0"`
	MaxFieldersOutsideCircle *int    `json:"max_fielders_outside_circle" validate:"omitempty,gte=2,lte=5"`
	IsMandatory              *bool   `json:"is_mandatory"`
	Description              *string `json:"description" validate:"omitempty,max=300"`
}

type deactivatePowerplayRequest struct {
	Innings int `json:"innings" validate:"required,gt=0"`
}

type recordBallRequest struct {
	Innings       int    `json:"innings" validate:"required,gt=0"`
	Over          int    `json:"over" validate:"gte=0"`
	BallInOver    int    `json:"ball_in_over" validate:"required,gte=1,lte=6"`
	BatterID      string `json:"batter_id" validate:"required"`
	BowlerID      string `json:"bowler_id" validate:"required"`
	Runs          int    `json:"runs" validate:"gte=0,lte=6"`
	Extras        int    `json:"extras" validate:"gte=0"`
	ExtraType     string `json:"extra_type"`
	Wicket        bool   `json:"wicket"`
	DismissalType string `json:"dismissal_type"`
	Commentary    string `json:"commentary" validate:"omitempty,max=1000"`
}

type overrideCurrentOverRequest struct {
	Innings int `json:"innings" validate:"required,gt=0"`
	Over    int `json:"over" validate:"gte=0"`
}

type internalJobSyncRequest struct {
	MatchIDs   []string `json:"match_ids"`
	MaxWorkers int      `json:"max_workers"`
	DryRun     bool     `json:"dry_run"`
}

type tournamentDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Season  string `json:"season,omitempty"`
	Format  string `json:"format,omitempty"`
	Status  string `json:"status"`
	StartAt string `json:"start_at,omitempty"`
	EndAt   string `json:"end_at,omitempty"`
}

type seriesDTO struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournament_id"`
	Name         string `json:"name"`
	Format       string `json:"format,omitempty"`
	MatchCount   int    `json:"match_count"`
}

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	Country   string `json:"country,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
}

type playerDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	BattingStyle string `json:"batting_style,omitempty"`
	BowlingStyle string `json:"bowling_style,omitempty"`
	ShirtNumber  int    `json:"shirt_number"`
}

type inningsScoreDTO struct {
	Innings       int     `json:"innings"`
	BattingTeamID string  `json:"batting_team_id,omitempty"`
	Runs          int     `json:"runs"`
	Wickets       int     `json:"wickets"`
	Overs         float64 `json:"overs"`
}

type matchDTO struct {
	ID               string            `json:"id"`
	TournamentID     string            `json:"tournament_id,omitempty"`
	SeriesID         string            `json:"series_id,omitempty"`
	HomeTeamID       string            `json:"home_team_id"`
	AwayTeamID       string            `json:"away_team_id"`
	Format           string            `json:"format"`
	Status           string            `json:"status"`
	Venue            string            `json:"venue,omitempty"`
	StartAt          string            `json:"start_at"`
	TossWinnerTeamID string            `json:"toss_winner_team_id,omitempty"`
	TossDecision     string            `json:"toss_decision,omitempty"`
	CurrentInnings   int               `json:"current_innings"`
	CurrentOver      int               `json:"current_over"`
	Scores           []inningsScoreDTO `json:"scores"`
	ResultSummary    string            `json:"result_summary,omitempty"`
	FeedRefID        int64             `json:"feed_ref_id,omitempty"`
}

type squadDTO struct {
	ID             string   `json:"id"`
	TeamID         string   `json:"team_id"`
	SeriesID       string   `json:"series_id"`
	Name           string   `json:"name,omitempty"`
	PlayerIDs      []string `json:"player_ids"`
	CaptainID      string   `json:"captain_id"`
	WicketKeeperID string   `json:"wicket_keeper_id"`
}

type powerplayStatsDTO struct {
	Runs           int     `json:"runs"`
	Wickets        int     `json:"wickets"`
	OversCompleted float64 `json:"overs_completed"`
	RunRate        float64 `json:"run_rate"`
	Boundaries     int     `json:"boundaries"`
	Sixes          int     `json:"sixes"`
}

type powerplayDTO struct {
	ID                       string            `json:"id"`
	MatchID                  string            `json:"match_id"`
	Type                     string            `json:"type"`
	Status                   string            `json:"status"`
	Innings                  int               `json:"innings"`
	StartOver                int               `json:"start_over"`
	EndOver                  int               `json:"end_over"`
	MaxFieldersOutsideCircle int               `json:"max_fielders_outside_circle"`
	IsMandatory              bool              `json:"is_mandatory"`
	Description              string            `json:"description,omitempty"`
	Stats                    powerplayStatsDTO `json:"stats"`
	ActivatedAt              string            `json:"activated_at,omitempty"`
	CompletedAt              string            `json:"completed_at,omitempty"`
}

type currentPowerplayDTO struct {
	HasActive                bool   `json:"has_active"`
	RecordID                 string `json:"record_id,omitempty"`
	Type                     string `json:"type,omitempty"`
	Innings                  int    `json:"innings,omitempty"`
	StartOver                int    `json:"start_over,omitempty"`
	EndOver                  int    `json:"end_over,omitempty"`
	MaxFieldersOutsideCircle int    `json:"max_fielders_outside_circle,omitempty"`
}

type ballEventDTO struct {
	ID            string `json:"id"`
	MatchID       string `json:"match_id"`
	Innings       int    `json:"innings"`
	Over          int    `json:"over"`
	BallInOver    int    `json:"ball_in_over"`
	BatterID      string `json:"batter_id"`
	BowlerID      string `json:"bowler_id"`
	Runs          int    `json:"runs"`
	Extras        int    `json:"extras"`
	ExtraType     string `json:"extra_type,omitempty"`
	Wicket        bool   `json:"wicket"`
	DismissalType string `json:"dismissal_type,omitempty"`
	Commentary    string `json:"commentary,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type advanceResultDTO struct {
	Over               int      `json:"over"`
	ActivatedRecordIDs []string `json:"activated_record_ids"`
	CompletedRecordIDs []string `json:"completed_record_ids"`
}

type recordBallResponseDTO struct {
	Ball       ballEventDTO     `json:"ball"`
	NewOver    int              `json:"new_over"`
	Powerplays advanceResultDTO `json:"powerplays"`
}

type dashboardDTO struct {
	Match       matchDTO            `json:"match"`
	HomeTeam    teamDTO             `json:"home_team"`
	AwayTeam    teamDTO             `json:"away_team"`
	Powerplays  []powerplayDTO      `json:"powerplays"`
	Current     currentPowerplayDTO `json:"current_powerplay"`
	RecentBalls []ballEventDTO      `json:"recent_balls"`
}

func tournamentToDTO(ctx context.Context, v tournament.Tournament) tournamentDTO {
	ctx, span := startSpan(ctx, "httpapi.tournamentToDTO")
	defer span.End()

	return tournamentDTO{
		ID:      v.ID,
		Name:    v.Name,
		Season:  v.Season,
		Format:  v.Format,
		Status:  tournament.NormalizeStatus(v.Status),
		StartAt: formatOptionalTime(v.StartAt),
		EndAt:   formatOptionalTime(v.EndAt),
	}
}

func seriesToDTO(ctx context.Context, v series.Series) seriesDTO {
	ctx, span := startSpan(ctx, "httpapi.seriesToDTO")
	defer span.End()

	return seriesDTO{
		ID:           v.ID,
		TournamentID: v.TournamentID,
		Name:         v.Name,
		Format:       v.Format,
		MatchCount:   v.MatchCount,
	}
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		ShortName: v.ShortName,
		Country:   v.Country,
		LogoURL:   v.LogoURL,
	}
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		Name:         v.Name,
		Role:         v.Role,
		BattingStyle: v.BattingStyle,
		BowlingStyle: v.BowlingStyle,
		ShirtNumber:  v.ShirtNumber,
	}
}

func matchToDTO(ctx context.Context, v match.Match) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	scores := make([]inningsScoreDTO, 0, len(v.Scores))
	for _, score := range v.Scores {
		scores = append(scores, inningsScoreDTO{
			Innings:       score.Innings,
			BattingTeamID: score.BattingTeamID,
			Runs:          score.Runs,
			Wickets:       score.Wickets,
			Overs:         score.Overs,
		})
	}

	return matchDTO{
		ID:               v.ID,
		TournamentID:     v.TournamentID,
		SeriesID:         v.SeriesID,
		HomeTeamID:       v.HomeTeamID,
		AwayTeamID:       v.AwayTeamID,
		Format:           v.Format,
		Status:           match.NormalizeStatus(v.Status),
		Venue:            v.Venue,
		StartAt:          v.StartAt.UTC().Format(time.RFC3339),
		TossWinnerTeamID: v.TossWinnerTeamID,
		TossDecision:     v.TossDecision,
		CurrentInnings:   v.CurrentInnings,
		CurrentOver:      v.CurrentOver,
		Scores:           scores,
		ResultSummary:    v.ResultSummary,
		FeedRefID:        v.FeedRefID,
	}
}

func squadToDTO(ctx context.Context, v squad.Squad) squadDTO {
	ctx, span := startSpan(ctx, "httpapi.squadToDTO")
	defer span.End()

	return squadDTO{
		ID:             v.ID,
		TeamID:         v.TeamID,
		SeriesID:       v.SeriesID,
		Name:           v.Name,
		PlayerIDs:      append([]string(nil), v.PlayerIDs...),
		CaptainID:      v.CaptainID,
		WicketKeeperID: v.WicketKeeperID,
	}
}

func powerplayToDTO(ctx context.Context, v powerplay.Record) powerplayDTO {
	ctx, span := startSpan(ctx, "httpapi.powerplayToDTO")
	defer span.End()

	return powerplayDTO{
		ID:                       v.ID,
		MatchID:                  v.MatchID,
		Type:                     v.Type,
		Status:                   powerplay.NormalizeStatus(v.Status),
		Innings:                  v.Innings,
		StartOver:                v.StartOver,
		EndOver:                  v.EndOver,
		MaxFieldersOutsideCircle: v.MaxFieldersOutsideCircle,
		IsMandatory:              v.IsMandatory,
		Description:              v.Description,
		Stats: powerplayStatsDTO{
			Runs:           v.Stats.Runs,
			Wickets:        v.Stats.Wickets,
			OversCompleted: v.Stats.OversCompleted,
			RunRate:        v.Stats.RunRate,
			Boundaries:     v.Stats.Boundaries,
			Sixes:          v.Stats.Sixes,
		},
		ActivatedAt: formatOptionalTimePtr(v.ActivatedAt),
		CompletedAt: formatOptionalTimePtr(v.CompletedAt),
	}
}

func currentPowerplayToDTO(ctx context.Context, v powerplay.CurrentView) currentPowerplayDTO {
	ctx, span := startSpan(ctx, "httpapi.currentPowerplayToDTO")
	defer span.End()

	return currentPowerplayDTO{
		HasActive:                v.HasActive,
		RecordID:                 v.RecordID,
		Type:                     v.Type,
		Innings:                  v.Innings,
		StartOver:                v.StartOver,
		EndOver:                  v.EndOver,
		MaxFieldersOutsideCircle: v.MaxFieldersOutsideCircle,
	}
}

func ballEventToDTO(ctx context.Context, v commentary.BallEvent) ballEventDTO {
	ctx, span := startSpan(ctx, "httpapi.ballEventToDTO")
	defer span.End()

	return ballEventDTO{
		ID:            v.ID,
		MatchID:       v.MatchID,
		Innings:       v.Innings,
		Over:          v.Over,
		BallInOver:    v.BallInOver,
		BatterID:      v.BatterID,
		BowlerID:      v.BowlerID,
		Runs:          v.Runs,
		Extras:        v.Extras,
		ExtraType:     v.ExtraType,
		Wicket:        v.Wicket,
		DismissalType: v.DismissalType,
		Commentary:    v.Commentary,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func advanceResultToDTO(ctx context.Context, v usecase.AdvanceResult) advanceResultDTO {
	ctx, span := startSpan(ctx, "httpapi.advanceResultToDTO")
	defer span.End()

	return advanceResultDTO{
		Over:               v.Over,
		ActivatedRecordIDs: emptyIfNil(v.ActivatedRecordIDs),
		CompletedRecordIDs: emptyIfNil(v.CompletedRecordIDs),
	}
}

func dashboardToDTO(ctx context.Context, v usecase.MatchDashboard) dashboardDTO {
	ctx, span := startSpan(ctx, "httpapi.dashboardToDTO")
	defer span.End()

	powerplays := make([]powerplayDTO, 0, len(v.Powerplays))
	for _, record := range v.Powerplays {
		powerplays = append(powerplays, powerplayToDTO(ctx, record))
	}
	balls := make([]ballEventDTO, 0, len(v.RecentBalls))
	for _, ball := range v.RecentBalls {
		balls = append(balls, ballEventToDTO(ctx, ball))
	}

	return dashboardDTO{
		Match:       matchToDTO(ctx, v.Match),
		HomeTeam:    teamToDTO(ctx, v.HomeTeam),
		AwayTeam:    teamToDTO(ctx, v.AwayTeam),
		Powerplays:  powerplays,
		Current:     currentPowerplayToDTO(ctx, v.Current),
		RecentBalls: balls,
	}
}

func ballEventsToDTO(ctx context.Context, items []commentary.BallEvent) []ballEventDTO {
	out := make([]ballEventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, ballEventToDTO(ctx, item))
	}
	return out
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func formatOptionalTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatOptionalTimePtr(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func parseTimestamp(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC3339: %v", usecase.ErrInvalidInput, field, err)
	}
	return parsed, nil
}
