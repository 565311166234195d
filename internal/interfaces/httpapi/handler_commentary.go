package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

func (h *Handler) RecordBall(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordBall")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req recordBallRequest
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

	result, err := h.commentaryService.RecordBall(ctx, usecase.RecordBallInput{
		MatchID:       matchID,
		Innings:       req.Innings,
		Over:          req.Over,
		BallInOver:    req.BallInOver,
		BatterID:      req.BatterID,
		BowlerID:      req.BowlerID,
		Runs:          req.Runs,
		Extras:        req.Extras,
		ExtraType:     req.ExtraType,
		Wicket:        req.Wicket,
		DismissalType: req.DismissalType,
		Commentary:    req.Commentary,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record ball failed",
			"user_id", principal.UserID,
			"match_id", matchID,
			"innings", req.Innings,
			"over", req.Over,
			"ball_in_over", req.BallInOver,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, recordBallResponseDTO{
		Ball:       ballEventToDTO(ctx, result.Ball),
		NewOver:    result.NewOver,
		Powerplays: advanceResultToDTO(ctx, result.Powerplays),
	})
}

func (h *Handler) ListBalls(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBalls")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	query := r.URL.Query()

	if raw := strings.TrimSpace(query.Get("latest")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: latest must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		items, err := h.commentaryService.Latest(ctx, matchID, limit)
		if err != nil {
			h.logger.WarnContext(ctx, "list latest balls failed", "match_id", matchID, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, ballEventsToDTO(ctx, items))
		return
	}

	if raw := strings.TrimSpace(query.Get("innings")); raw != "" {
		innings, err := strconv.Atoi(raw)
		if err != nil || innings <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: innings must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		items, err := h.commentaryService.ListByMatchInnings(ctx, matchID, innings)
		if err != nil {
			h.logger.WarnContext(ctx, "list balls by innings failed", "match_id", matchID, "innings", innings, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, ballEventsToDTO(ctx, items))
		return
	}

	items, err := h.commentaryService.ListByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list balls failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, ballEventsToDTO(ctx, items))
}

func (h *Handler) OverrideCurrentOver(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OverrideCurrentOver")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req overrideCurrentOverRequest
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

	result, err := h.powerplayService.OverrideCurrentOver(ctx, matchID, req.Innings, req.Over)
	if err != nil {
		h.logger.WarnContext(ctx, "override current over failed",
			"user_id", principal.UserID,
			"match_id", matchID,
			"innings", req.Innings,
			"over", req.Over,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "current over overridden",
		"user_id", principal.UserID,
		"match_id", matchID,
		"innings", req.Innings,
		"over", req.Over,
	)
	writeSuccess(ctx, w, http.StatusOK, advanceResultToDTO(ctx, result))
}
