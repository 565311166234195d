package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

func TestPublisherNotifyTransition_PostsPayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer webhook-token" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}

		var payload usecase.PowerplayTransition
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.MatchID != "match-ind-pak-t20-01" || payload.To != "ACTIVE" {
			t.Fatalf("unexpected payload: %+v", payload)
		}

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	publisher := NewPublisher(PublisherConfig{
		HTTPClient: srv.Client(),
		WebhookURL: srv.URL,
		Token:      "webhook-token",
		Logger:     logging.NewNop(),
	})

	err := publisher.NotifyTransition(context.Background(), usecase.PowerplayTransition{
		MatchID:   "match-ind-pak-t20-01",
		RecordID:  "pp-ind-pak-1",
		Type:      "MANDATORY",
		Innings:   1,
		From:      "PENDING",
		To:        "ACTIVE",
		Over:      1,
		Triggered: "auto",
	})
	if err != nil {
		t.Fatalf("notify transition: %v", err)
	}
}

func TestPublisherNotifyTransition_NoopWithoutWebhookURL(t *testing.T) {
	t.Parallel()

	publisher := NewPublisher(PublisherConfig{Logger: logging.NewNop()})

	if err := publisher.NotifyTransition(context.Background(), usecase.PowerplayTransition{}); err != nil {
		t.Fatalf("expected nil error without webhook url, got %v", err)
	}
}

func TestPublisherNotifyTransition_ErrorOnNon2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	publisher := NewPublisher(PublisherConfig{
		HTTPClient: srv.Client(),
		WebhookURL: srv.URL,
		Logger:     logging.NewNop(),
	})

	if err := publisher.NotifyTransition(context.Background(), usecase.PowerplayTransition{RecordID: "pp-1"}); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}
