package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

func (h *Handler) CreateSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSquad")
	defer span.End()

	var req upsertSquadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.squadService.Create(ctx, usecase.UpsertSquadInput{
		TeamID:         req.TeamID,
		SeriesID:       req.SeriesID,
		Name:           req.Name,
		PlayerIDs:      req.PlayerIDs,
		CaptainID:      req.CaptainID,
		WicketKeeperID: req.WicketKeeperID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create squad failed", "team_id", req.TeamID, "series_id", req.SeriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, squadToDTO(ctx, item))
}

func (h *Handler) GetSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquad")
	defer span.End()

	squadID := strings.TrimSpace(r.PathValue("squadID"))
	item, err := h.squadService.GetByID(ctx, squadID)
	if err != nil {
		h.logger.WarnContext(ctx, "get squad failed", "squad_id", squadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(ctx, item))
}

func (h *Handler) UpdateSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSquad")
	defer span.End()

	squadID := strings.TrimSpace(r.PathValue("squadID"))

	var req upsertSquadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.squadService.Update(ctx, squadID, usecase.UpsertSquadInput{
		TeamID:         req.TeamID,
		SeriesID:       req.SeriesID,
		Name:           req.Name,
		PlayerIDs:      req.PlayerIDs,
		CaptainID:      req.CaptainID,
		WicketKeeperID: req.WicketKeeperID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update squad failed", "squad_id", squadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(ctx, item))
}

func (h *Handler) DeleteSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSquad")
	defer span.End()

	squadID := strings.TrimSpace(r.PathValue("squadID"))
	if err := h.squadService.Delete(ctx, squadID); err != nil {
		h.logger.WarnContext(ctx, "delete squad failed", "squad_id", squadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ListSquadsBySeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSquadsBySeries")
	defer span.End()

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	items, err := h.squadService.ListBySeries(ctx, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "list squads by series failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]squadDTO, 0, len(items))
	for _, item := range items {
		out = append(out, squadToDTO(ctx, item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
