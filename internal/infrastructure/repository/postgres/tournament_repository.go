package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fieldcircle/cricket-admin/internal/domain/tournament"
	qb "github.com/fieldcircle/cricket-admin/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	insertModel := tournamentInsertModel{
		PublicID: item.ID,
		Name:     item.Name,
		Season:   nullableString(item.Season),
		Format:   nullableString(item.Format),
		Status:   item.Status,
		StartAt:  timePtrOrNil(item.StartAt),
		EndAt:    timePtrOrNil(item.EndAt),
	}
	query, args, err := qb.InsertModel("tournaments", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create tournament query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create tournament: %w", err)
	}

	return nil
}

func (r *TournamentRepository) Update(ctx context.Context, item tournament.Tournament) error {
	query, args, err := qb.Update("tournaments").
		Set("name", item.Name).
		Set("season", nullableString(item.Season)).
		Set("format", nullableString(item.Format)).
		Set("status", item.Status).
		Set("start_at", timePtrOrNil(item.StartAt)).
		Set("end_at", timePtrOrNil(item.EndAt)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update tournament query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update tournament: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update tournament: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update tournament: not found")
	}

	return nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament by id query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament by id: %w", err)
	}

	return tournamentFromRow(row), true, nil
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.IsNull("deleted_at")).
		OrderBy("start_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row))
	}
	return out, nil
}

func (r *TournamentRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("tournaments").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete tournament query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete tournament: %w", err)
	}

	return nil
}

func tournamentFromRow(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:      row.PublicID,
		Name:    row.Name,
		Season:  nullStringToString(row.Season),
		Format:  nullStringToString(row.Format),
		Status:  row.Status,
		StartAt: timeOrZero(row.StartAt),
		EndAt:   timeOrZero(row.EndAt),
	}
}

func timePtrOrNil(value time.Time) *time.Time {
	if value.IsZero() {
		return nil
	}
	return &value
}

func timeOrZero(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return *value
}
