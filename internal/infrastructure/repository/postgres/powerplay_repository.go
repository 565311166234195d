package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
	qb "github.com/fieldcircle/cricket-admin/internal/platform/querybuilder"
)

type PowerplayRepository struct {
	db *sqlx.DB
}

func NewPowerplayRepository(db *sqlx.DB) *PowerplayRepository {
	return &PowerplayRepository{db: db}
}

func (r *PowerplayRepository) Create(ctx context.Context, record powerplay.Record) error {
	insertModel := powerplayInsertModel{
		PublicID:                 record.ID,
		MatchID:                  record.MatchID,
		Type:                     record.Type,
		Status:                   record.Status,
		Innings:                  record.Innings,
		StartOver:                record.StartOver,
		EndOver:                  record.EndOver,
		MaxFieldersOutsideCircle: record.MaxFieldersOutsideCircle,
		IsMandatory:              record.IsMandatory,
		Description:              nullableString(record.Description),
		Stats:                    encodeJSON(record.Stats),
	}
	query, args, err := qb.InsertModel("powerplays", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create powerplay query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create powerplay: %w", err)
	}

	return nil
}

func (r *PowerplayRepository) Update(ctx context.Context, record powerplay.Record) error {
	query, args, err := qb.Update("powerplays").
		Set("type", record.Type).
		Set("status", record.Status).
		Set("start_over", record.StartOver).
		Set("end_over", record.EndOver).
		Set("max_fielders_outside_circle", record.MaxFieldersOutsideCircle).
		Set("is_mandatory", record.IsMandatory).
		Set("description", nullableString(record.Description)).
		Set("stats", encodeJSON(record.Stats)).
		Set("activated_at", nullableTime(record.ActivatedAt)).
		Set("completed_at", nullableTime(record.CompletedAt)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", record.ID),
			qb.Eq("match_public_id", record.MatchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update powerplay query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update powerplay: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update powerplay: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update powerplay: not found")
	}

	return nil
}

func (r *PowerplayRepository) GetByID(ctx context.Context, matchID, recordID string) (powerplay.Record, bool, error) {
	query, args, err := qb.Select("*").From("powerplays").
		Where(
			qb.Eq("public_id", recordID),
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return powerplay.Record{}, false, fmt.Errorf("build get powerplay by id query: %w", err)
	}

	var row powerplayTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return powerplay.Record{}, false, nil
		}
		return powerplay.Record{}, false, fmt.Errorf("get powerplay by id: %w", err)
	}

	return powerplayFromRow(row), true, nil
}

func (r *PowerplayRepository) ListByMatch(ctx context.Context, matchID string) ([]powerplay.Record, error) {
	query, args, err := qb.Select("*").From("powerplays").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("innings", "start_over", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list powerplays query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *PowerplayRepository) ListByMatchInnings(ctx context.Context, matchID string, innings int) ([]powerplay.Record, error) {
	query, args, err := qb.Select("*").From("powerplays").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.Eq("innings", innings),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_over", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list powerplays by innings query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *PowerplayRepository) Delete(ctx context.Context, matchID, recordID string) error {
	query, args, err := qb.Update("powerplays").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", recordID),
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete powerplay query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete powerplay: %w", err)
	}

	return nil
}

func (r *PowerplayRepository) selectRecords(ctx context.Context, query string, args []any) ([]powerplay.Record, error) {
	var rows []powerplayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select powerplays: %w", err)
	}

	out := make([]powerplay.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, powerplayFromRow(row))
	}
	return out, nil
}

func powerplayFromRow(row powerplayTableModel) powerplay.Record {
	record := powerplay.Record{
		ID:                       row.PublicID,
		MatchID:                  row.MatchID,
		Type:                     row.Type,
		Status:                   row.Status,
		Innings:                  row.Innings,
		StartOver:                row.StartOver,
		EndOver:                  row.EndOver,
		MaxFieldersOutsideCircle: row.MaxFieldersOutsideCircle,
		IsMandatory:              row.IsMandatory,
		Description:              nullStringToString(row.Description),
		ActivatedAt:              row.ActivatedAt,
		CompletedAt:              row.CompletedAt,
	}
	decodeJSON(row.Stats, &record.Stats)
	return record
}
