package postgres

import (
	"database/sql"
	"time"
)

type tournamentTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	Season    sql.NullString `db:"season"`
	Format    sql.NullString `db:"format"`
	Status    string         `db:"status"`
	StartAt   *time.Time     `db:"start_at"`
	EndAt     *time.Time     `db:"end_at"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}

type tournamentInsertModel struct {
	PublicID string     `db:"public_id"`
	Name     string     `db:"name"`
	Season   *string    `db:"season"`
	Format   *string    `db:"format"`
	Status   string     `db:"status"`
	StartAt  *time.Time `db:"start_at"`
	EndAt    *time.Time `db:"end_at"`
}

type seriesTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Name         string         `db:"name"`
	Format       sql.NullString `db:"format"`
	MatchCount   int            `db:"match_count"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type seriesInsertModel struct {
	PublicID     string  `db:"public_id"`
	TournamentID string  `db:"tournament_public_id"`
	Name         string  `db:"name"`
	Format       *string `db:"format"`
	MatchCount   int     `db:"match_count"`
}
