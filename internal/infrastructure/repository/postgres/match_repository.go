package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	qb "github.com/fieldcircle/cricket-admin/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", matchInsertRow(item), "")
	if err != nil {
		return fmt.Errorf("build create match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create match: %w", err)
	}

	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update("matches").
		Set("status", item.Status).
		Set("venue", item.Venue).
		Set("start_at", item.StartAt).
		Set("toss_winner_team_public_id", nullableString(item.TossWinnerTeamID)).
		Set("toss_decision", nullableString(item.TossDecision)).
		Set("current_innings", item.CurrentInnings).
		Set("current_over", item.CurrentOver).
		Set("scores", encodeJSON(item.Scores)).
		Set("result_summary", nullableString(item.ResultSummary)).
		Set("feed_ref_id", nullableInt64(item.FeedRefID)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update match: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update match: not found")
	}

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.IsNull("deleted_at")).
		OrderBy("start_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListByStatus(ctx context.Context, status string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("status", match.NormalizeStatus(status)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by status query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete match: %w", err)
	}

	return nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchInsertRow(item match.Match) matchInsertModel {
	return matchInsertModel{
		PublicID:         item.ID,
		TournamentID:     item.TournamentID,
		SeriesID:         nullableString(item.SeriesID),
		HomeTeamID:       item.HomeTeamID,
		AwayTeamID:       item.AwayTeamID,
		Format:           item.Format,
		Status:           item.Status,
		Venue:            item.Venue,
		StartAt:          item.StartAt,
		TossWinnerTeamID: nullableString(item.TossWinnerTeamID),
		TossDecision:     nullableString(item.TossDecision),
		CurrentInnings:   item.CurrentInnings,
		CurrentOver:      item.CurrentOver,
		Scores:           encodeJSON(item.Scores),
		ResultSummary:    nullableString(item.ResultSummary),
		FeedRefID:        nullableInt64(item.FeedRefID),
	}
}

func matchFromRow(row matchTableModel) match.Match {
	item := match.Match{
		ID:               row.PublicID,
		TournamentID:     row.TournamentID,
		SeriesID:         nullStringToString(row.SeriesID),
		HomeTeamID:       row.HomeTeamID,
		AwayTeamID:       row.AwayTeamID,
		Format:           row.Format,
		Status:           row.Status,
		Venue:            row.Venue,
		StartAt:          row.StartAt,
		TossWinnerTeamID: nullStringToString(row.TossWinnerTeamID),
		TossDecision:     nullStringToString(row.TossDecision),
		CurrentInnings:   row.CurrentInnings,
		CurrentOver:      row.CurrentOver,
		ResultSummary:    nullStringToString(row.ResultSummary),
		FeedRefID:        nullInt64ToInt64(row.FeedRefID),
	}
	decodeJSON(row.Scores, &item.Scores)
	return item
}
