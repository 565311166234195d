package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldcircle/cricket-admin/internal/domain/user"
	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

type stubTokenVerifier struct {
	principal user.Principal
	err       error
}

func (v *stubTokenVerifier) VerifyAccessToken(_ context.Context, _ string) (user.Principal, error) {
	return v.principal, v.err
}

func TestRequireAuth_PassesPrincipalToHandler(t *testing.T) {
	verifier := &stubTokenVerifier{principal: user.Principal{UserID: "user-123", Roles: []string{"scorer"}}}

	var gotPrincipal user.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal, _ = principalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/matches", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotPrincipal.UserID != "user-123" {
		t.Fatalf("unexpected principal: %+v", gotPrincipal)
	}
}

func TestRequireAuth_RejectsMissingAndMalformedHeaders(t *testing.T) {
	verifier := &stubTokenVerifier{principal: user.Principal{UserID: "user-123"}}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not be reached")
	})
	handler := RequireAuth(verifier, next)

	for _, header := range []string{"", "token-abc", "Basic dXNlcg==", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/v1/matches", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected status 401, got %d", header, rec.Code)
		}
	}
}

func TestRequireAuth_PropagatesVerifierError(t *testing.T) {
	verifier := &stubTokenVerifier{err: fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/matches", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireInternalJobToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireInternalJobToken("job-secret", next)

	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/live-sync", nil)
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/jobs/live-sync", nil)
	req.Header.Set("X-Internal-Job-Token", "wrong")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	RequireInternalJobToken("", next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/jobs/live-sync", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 when token unset, got %d", rec.Code)
	}
}
