package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

func (h *Handler) CreatePowerplay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePowerplay")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req createPowerplayRequest
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

	record, err := h.powerplayService.Create(ctx, matchID, usecase.CreatePowerplayInput{
		Type:                     req.Type,
		Innings:                  req.Innings,
		StartOver:                req.StartOver,
		EndOver:                  req.EndOver,
		MaxFieldersOutsideCircle: req.MaxFieldersOutsideCircle,
		IsMandatory:              req.IsMandatory,
		Description:              req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create powerplay failed", "match_id", matchID, "type", req.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, powerplayToDTO(ctx, record))
}

func (h *Handler) ListPowerplays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPowerplays")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	records, err := h.powerplayService.ListByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list powerplays failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]powerplayDTO, 0, len(records))
	for _, record := range records {
		out = append(out, powerplayToDTO(ctx, record))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetCurrentPowerplay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentPowerplay")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	view, err := h.powerplayService.Current(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get current powerplay failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentPowerplayToDTO(ctx, view))
}

func (h *Handler) UpdatePowerplay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePowerplay")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	powerplayID := strings.TrimSpace(r.PathValue("powerplayID"))

	var req updatePowerplayRequest
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

	record, err := h.powerplayService.Update(ctx, matchID, powerplayID, usecase.UpdatePowerplayInput{
		Type:                     req.Type,
		StartOver:                req.StartOver,
		EndOver:                  req.EndOver,
		MaxFieldersOutsideCircle: req.MaxFieldersOutsideCircle,
		IsMandatory:              req.IsMandatory,
		Description:              req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update powerplay failed", "match_id", matchID, "powerplay_id", powerplayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, powerplayToDTO(ctx, record))
}

func (h *Handler) DeletePowerplay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePowerplay")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	powerplayID := strings.TrimSpace(r.PathValue("powerplayID"))

	if err := h.powerplayService.Delete(ctx, matchID, powerplayID); err != nil {
		h.logger.WarnContext(ctx, "delete powerplay failed", "match_id", matchID, "powerplay_id", powerplayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ActivatePowerplay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ActivatePowerplay")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	powerplayID := strings.TrimSpace(r.PathValue("powerplayID"))

	record, err := h.powerplayService.Activate(ctx, matchID, powerplayID)
	if err != nil {
		h.logger.WarnContext(ctx, "activate powerplay failed",
			"user_id", principal.UserID,
			"match_id", matchID,
			"powerplay_id", powerplayID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, powerplayToDTO(ctx, record))
}

func (h *Handler) DeactivatePowerplay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivatePowerplay")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req deactivatePowerplayRequest
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

	record, err := h.powerplayService.Deactivate(ctx, matchID, req.Innings)
	if err != nil {
		h.logger.WarnContext(ctx, "deactivate powerplay failed",
			"user_id", principal.UserID,
			"match_id", matchID,
			"innings", req.Innings,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, powerplayToDTO(ctx, record))
}
