package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldcircle/cricket-admin/internal/domain/series"
	qb "github.com/fieldcircle/cricket-admin/internal/platform/querybuilder"
)

type SeriesRepository struct {
	db *sqlx.DB
}

func NewSeriesRepository(db *sqlx.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

func (r *SeriesRepository) Create(ctx context.Context, item series.Series) error {
	insertModel := seriesInsertModel{
		PublicID:     item.ID,
		TournamentID: item.TournamentID,
		Name:         item.Name,
		Format:       nullableString(item.Format),
		MatchCount:   item.MatchCount,
	}
	query, args, err := qb.InsertModel("series", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create series query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create series: %w", err)
	}

	return nil
}

func (r *SeriesRepository) Update(ctx context.Context, item series.Series) error {
	query, args, err := qb.Update("series").
		Set("name", item.Name).
		Set("format", nullableString(item.Format)).
		Set("match_count", item.MatchCount).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update series query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update series: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update series: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update series: not found")
	}

	return nil
}

func (r *SeriesRepository) GetByID(ctx context.Context, id string) (series.Series, bool, error) {
	query, args, err := qb.Select("*").From("series").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return series.Series{}, false, fmt.Errorf("build get series by id query: %w", err)
	}

	var row seriesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return series.Series{}, false, nil
		}
		return series.Series{}, false, fmt.Errorf("get series by id: %w", err)
	}

	return seriesFromRow(row), true, nil
}

func (r *SeriesRepository) List(ctx context.Context) ([]series.Series, error) {
	query, args, err := qb.Select("*").From("series").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list series query: %w", err)
	}

	return r.selectSeries(ctx, query, args)
}

func (r *SeriesRepository) ListByTournament(ctx context.Context, tournamentID string) ([]series.Series, error) {
	query, args, err := qb.Select("*").From("series").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list series by tournament query: %w", err)
	}

	return r.selectSeries(ctx, query, args)
}

func (r *SeriesRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("series").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete series query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete series: %w", err)
	}

	return nil
}

func (r *SeriesRepository) selectSeries(ctx context.Context, query string, args []any) ([]series.Series, error) {
	var rows []seriesTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select series: %w", err)
	}

	out := make([]series.Series, 0, len(rows))
	for _, row := range rows {
		out = append(out, seriesFromRow(row))
	}
	return out, nil
}

func seriesFromRow(row seriesTableModel) series.Series {
	return series.Series{
		ID:           row.PublicID,
		TournamentID: row.TournamentID,
		Name:         row.Name,
		Format:       nullStringToString(row.Format),
		MatchCount:   row.MatchCount,
	}
}
