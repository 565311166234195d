package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldcircle/cricket-admin/internal/domain/commentary"
	qb "github.com/fieldcircle/cricket-admin/internal/platform/querybuilder"
)

type CommentaryRepository struct {
	db *sqlx.DB
}

func NewCommentaryRepository(db *sqlx.DB) *CommentaryRepository {
	return &CommentaryRepository{db: db}
}

func (r *CommentaryRepository) Create(ctx context.Context, event commentary.BallEvent) error {
	insertModel := ballEventInsertModel{
		PublicID:      event.ID,
		MatchID:       event.MatchID,
		Innings:       event.Innings,
		Over:          event.Over,
		BallInOver:    event.BallInOver,
		BatterID:      event.BatterID,
		BowlerID:      event.BowlerID,
		Runs:          event.Runs,
		Extras:        event.Extras,
		ExtraType:     nullableString(event.ExtraType),
		Wicket:        event.Wicket,
		DismissalType: nullableString(event.DismissalType),
		Commentary:    nullableString(event.Commentary),
		CreatedAt:     event.CreatedAt,
	}
	query, args, err := qb.InsertModel("ball_events", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create ball event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create ball event: %w", err)
	}

	return nil
}

func (r *CommentaryRepository) ListByMatch(ctx context.Context, matchID string) ([]commentary.BallEvent, error) {
	query, args, err := qb.Select("*").From("ball_events").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("innings", "over_number", "ball_in_over", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list ball events query: %w", err)
	}

	return r.selectEvents(ctx, query, args)
}

func (r *CommentaryRepository) ListByMatchInnings(ctx context.Context, matchID string, innings int) ([]commentary.BallEvent, error) {
	query, args, err := qb.Select("*").From("ball_events").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.Eq("innings", innings),
		).
		OrderBy("over_number", "ball_in_over", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list ball events by innings query: %w", err)
	}

	return r.selectEvents(ctx, query, args)
}

func (r *CommentaryRepository) LatestByMatch(ctx context.Context, matchID string, limit int) ([]commentary.BallEvent, error) {
	if limit <= 0 {
		limit = 12
	}

	query, args, err := qb.Select("*").From("ball_events").
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list latest ball events query: %w", err)
	}

	return r.selectEvents(ctx, query, args)
}

func (r *CommentaryRepository) selectEvents(ctx context.Context, query string, args []any) ([]commentary.BallEvent, error) {
	var rows []ballEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ball events: %w", err)
	}

	out := make([]commentary.BallEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, commentary.BallEvent{
			ID:            row.PublicID,
			MatchID:       row.MatchID,
			Innings:       row.Innings,
			Over:          row.Over,
			BallInOver:    row.BallInOver,
			BatterID:      row.BatterID,
			BowlerID:      row.BowlerID,
			Runs:          row.Runs,
			Extras:        row.Extras,
			ExtraType:     nullStringToString(row.ExtraType),
			Wicket:        row.Wicket,
			DismissalType: nullStringToString(row.DismissalType),
			Commentary:    nullStringToString(row.Commentary),
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, nil
}
