package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	ShortName string         `db:"short_name"`
	Country   sql.NullString `db:"country"`
	LogoURL   sql.NullString `db:"logo_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID  string  `db:"public_id"`
	Name      string  `db:"name"`
	ShortName string  `db:"short_name"`
	Country   *string `db:"country"`
	LogoURL   *string `db:"logo_url"`
}
