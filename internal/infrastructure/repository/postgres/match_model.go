package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID               int64          `db:"id"`
	PublicID         string         `db:"public_id"`
	TournamentID     string         `db:"tournament_public_id"`
	SeriesID         sql.NullString `db:"series_public_id"`
	HomeTeamID       string         `db:"home_team_public_id"`
	AwayTeamID       string         `db:"away_team_public_id"`
	Format           string         `db:"format"`
	Status           string         `db:"status"`
	Venue            string         `db:"venue"`
	StartAt          time.Time      `db:"start_at"`
	TossWinnerTeamID sql.NullString `db:"toss_winner_team_public_id"`
	TossDecision     sql.NullString `db:"toss_decision"`
	CurrentInnings   int            `db:"current_innings"`
	CurrentOver      int            `db:"current_over"`
	Scores           string         `db:"scores"`
	ResultSummary    sql.NullString `db:"result_summary"`
	FeedRefID        sql.NullInt64  `db:"feed_ref_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	DeletedAt        *time.Time     `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID         string    `db:"public_id"`
	TournamentID     string    `db:"tournament_public_id"`
	SeriesID         *string   `db:"series_public_id"`
	HomeTeamID       string    `db:"home_team_public_id"`
	AwayTeamID       string    `db:"away_team_public_id"`
	Format           string    `db:"format"`
	Status           string    `db:"status"`
	Venue            string    `db:"venue"`
	StartAt          time.Time `db:"start_at"`
	TossWinnerTeamID *string   `db:"toss_winner_team_public_id"`
	TossDecision     *string   `db:"toss_decision"`
	CurrentInnings   int       `db:"current_innings"`
	CurrentOver      int       `db:"current_over"`
	Scores           string    `db:"scores"`
	ResultSummary    *string   `db:"result_summary"`
	FeedRefID        *int64    `db:"feed_ref_id"`
}
