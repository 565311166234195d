package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "invalid transition",
			err:        fmt.Errorf("%w: %w", usecase.ErrInvalidInput, powerplay.ErrInvalidTransition),
			wantStatus: http.StatusConflict,
			wantReason: "invalidTransition",
		},
		{
			name:       "record not editable",
			err:        fmt.Errorf("%w: %w", usecase.ErrInvalidInput, powerplay.ErrRecordNotEditable),
			wantStatus: http.StatusConflict,
			wantReason: "invalidTransition",
		},
		{
			name:       "no active powerplay",
			err:        fmt.Errorf("%w: %w", usecase.ErrNotFound, powerplay.ErrNoActivePowerplay),
			wantStatus: http.StatusNotFound,
			wantReason: "noActivePowerplay",
		},
		{
			name:       "invalid window",
			err:        fmt.Errorf("%w: %w", usecase.ErrInvalidInput, powerplay.ErrInvalidWindow),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidPowerplay",
		},
		{
			name:       "plain invalid input",
			err:        fmt.Errorf("%w: name is required", usecase.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: match=missing", usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "unauthorized",
			err:        usecase.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantReason: "unauthorized",
		},
		{
			name:       "dependency unavailable",
			err:        usecase.ErrDependencyUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantReason: "dependencyUnavailable",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "internalError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(ctx, tt.err)
			if mapped.HTTPStatus != tt.wantStatus || mapped.Reason != tt.wantReason {
				t.Fatalf("mapError(%v) = %+v, want status=%d reason=%s", tt.err, mapped, tt.wantStatus, tt.wantReason)
			}
		})
	}
}
