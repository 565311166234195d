package postgres

import (
	"database/sql"
	"time"
)

type ballEventTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	MatchID       string         `db:"match_public_id"`
	Innings       int            `db:"innings"`
	Over          int            `db:"over_number"`
	BallInOver    int            `db:"ball_in_over"`
	BatterID      string         `db:"batter_public_id"`
	BowlerID      string         `db:"bowler_public_id"`
	Runs          int            `db:"runs"`
	Extras        int            `db:"extras"`
	ExtraType     sql.NullString `db:"extra_type"`
	Wicket        bool           `db:"wicket"`
	DismissalType sql.NullString `db:"dismissal_type"`
	Commentary    sql.NullString `db:"commentary"`
	CreatedAt     time.Time      `db:"created_at"`
}

type ballEventInsertModel struct {
	PublicID      string    `db:"public_id"`
	MatchID       string    `db:"match_public_id"`
	Innings       int       `db:"innings"`
	Over          int       `db:"over_number"`
	BallInOver    int       `db:"ball_in_over"`
	BatterID      string    `db:"batter_public_id"`
	BowlerID      string    `db:"bowler_public_id"`
	Runs          int       `db:"runs"`
	Extras        int       `db:"extras"`
	ExtraType     *string   `db:"extra_type"`
	Wicket        bool      `db:"wicket"`
	DismissalType *string   `db:"dismissal_type"`
	Commentary    *string   `db:"commentary"`
	CreatedAt     time.Time `db:"created_at"`
}
