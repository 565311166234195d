package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldcircle/cricket-admin/internal/domain/squad"
	qb "github.com/fieldcircle/cricket-admin/internal/platform/querybuilder"
)

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) Create(ctx context.Context, item squad.Squad) error {
	insertModel := squadInsertModel{
		PublicID:       item.ID,
		TeamID:         item.TeamID,
		SeriesID:       item.SeriesID,
		Name:           nullableString(item.Name),
		PlayerIDs:      encodeJSON(item.PlayerIDs),
		CaptainID:      nullableString(item.CaptainID),
		WicketKeeperID: nullableString(item.WicketKeeperID),
	}
	query, args, err := qb.InsertModel("squads", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create squad query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create squad: %w", err)
	}

	return nil
}

func (r *SquadRepository) Update(ctx context.Context, item squad.Squad) error {
	query, args, err := qb.Update("squads").
		Set("team_public_id", item.TeamID).
		Set("series_public_id", item.SeriesID).
		Set("name", nullableString(item.Name)).
		Set("player_ids", encodeJSON(item.PlayerIDs)).
		Set("captain_public_id", nullableString(item.CaptainID)).
		Set("wicket_keeper_public_id", nullableString(item.WicketKeeperID)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update squad query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update squad: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update squad: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update squad: not found")
	}

	return nil
}

func (r *SquadRepository) GetByID(ctx context.Context, id string) (squad.Squad, bool, error) {
	query, args, err := qb.Select("*").From("squads").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return squad.Squad{}, false, fmt.Errorf("build get squad by id query: %w", err)
	}

	var row squadTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return squad.Squad{}, false, nil
		}
		return squad.Squad{}, false, fmt.Errorf("get squad by id: %w", err)
	}

	return squadFromRow(row), true, nil
}

func (r *SquadRepository) ListBySeries(ctx context.Context, seriesID string) ([]squad.Squad, error) {
	query, args, err := qb.Select("*").From("squads").
		Where(
			qb.Eq("series_public_id", seriesID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list squads by series query: %w", err)
	}

	return r.selectSquads(ctx, query, args)
}

func (r *SquadRepository) ListByTeam(ctx context.Context, teamID string) ([]squad.Squad, error) {
	query, args, err := qb.Select("*").From("squads").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list squads by team query: %w", err)
	}

	return r.selectSquads(ctx, query, args)
}

func (r *SquadRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("squads").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete squad query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete squad: %w", err)
	}

	return nil
}

func (r *SquadRepository) selectSquads(ctx context.Context, query string, args []any) ([]squad.Squad, error) {
	var rows []squadTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select squads: %w", err)
	}

	out := make([]squad.Squad, 0, len(rows))
	for _, row := range rows {
		out = append(out, squadFromRow(row))
	}
	return out, nil
}

func squadFromRow(row squadTableModel) squad.Squad {
	item := squad.Squad{
		ID:             row.PublicID,
		TeamID:         row.TeamID,
		SeriesID:       row.SeriesID,
		Name:           nullStringToString(row.Name),
		CaptainID:      nullStringToString(row.CaptainID),
		WicketKeeperID: nullStringToString(row.WicketKeeperID),
	}
	decodeJSON(row.PlayerIDs, &item.PlayerIDs)
	return item
}
