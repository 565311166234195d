package postgres

import (
	"database/sql"
	"time"
)

type squadTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	TeamID         string         `db:"team_public_id"`
	SeriesID       string         `db:"series_public_id"`
	Name           sql.NullString `db:"name"`
	PlayerIDs      string         `db:"player_ids"`
	CaptainID      sql.NullString `db:"captain_public_id"`
	WicketKeeperID sql.NullString `db:"wicket_keeper_public_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}

type squadInsertModel struct {
	PublicID       string  `db:"public_id"`
	TeamID         string  `db:"team_public_id"`
	SeriesID       string  `db:"series_public_id"`
	Name           *string `db:"name"`
	PlayerIDs      string  `db:"player_ids"`
	CaptainID      *string `db:"captain_public_id"`
	WicketKeeperID *string `db:"wicket_keeper_public_id"`
}
