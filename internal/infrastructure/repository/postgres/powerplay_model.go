package postgres

import (
	"database/sql"
	"time"
)

type powerplayTableModel struct {
	ID                       int64          `db:"id"`
	PublicID                 string         `db:"public_id"`
	MatchID                  string         `db:"match_public_id"`
	Type                     string         `db:"type"`
	Status                   string         `db:"status"`
	Innings                  int            `db:"innings"`
	StartOver                int            `db:"start_over"`
	EndOver                  int            `db:"end_over"`
	MaxFieldersOutsideCircle int            `db:"max_fielders_outside_circle"`
	IsMandatory              bool           `db:"is_mandatory"`
	Description              sql.NullString `db:"description"`
	Stats                    string         `db:"stats"`
	ActivatedAt              *time.Time     `db:"activated_at"`
	CompletedAt              *time.Time     `db:"completed_at"`
	CreatedAt                time.Time      `db:"created_at"`
	UpdatedAt                time.Time      `db:"updated_at"`
	DeletedAt                *time.Time     `db:"deleted_at"`
}

type powerplayInsertModel struct {
	PublicID                 string  `db:"public_id"`
	MatchID                  string  `db:"match_public_id"`
	Type                     string  `db:"type"`
	Status                   string  `db:"status"`
	Innings                  int     `db:"innings"`
	StartOver                int     `db:"start_over"`
	EndOver                  int     `db:"end_over"`
	MaxFieldersOutsideCircle int     `db:"max_fielders_outside_circle"`
	IsMandatory              bool    `db:"is_mandatory"`
	Description              *string `db:"description"`
	Stats                    string  `db:"stats"`
}
