package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullableString(t *testing.T) {
	if nullableString("") != nil {
		t.Fatalf("expected nil for empty string")
	}
	if got := nullableString("match-1"); got == nil || *got != "match-1" {
		t.Fatalf("unexpected pointer value: %v", got)
	}
}

func TestNullableInt64(t *testing.T) {
	if nullableInt64(0) != nil {
		t.Fatalf("expected nil for zero")
	}
	if nullableInt64(-5) != nil {
		t.Fatalf("expected nil for negative value")
	}
	if got := nullableInt64(900231); got == nil || *got != 900231 {
		t.Fatalf("unexpected pointer value: %v", got)
	}
}

func TestNullStringToString(t *testing.T) {
	if got := nullStringToString(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string for null, got %q", got)
	}
	if got := nullStringToString(sql.NullString{String: "LIVE", Valid: true}); got != "LIVE" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestNullInt64ToInt64(t *testing.T) {
	if got := nullInt64ToInt64(sql.NullInt64{}); got != 0 {
		t.Fatalf("expected 0 for null, got %d", got)
	}
	if got := nullInt64ToInt64(sql.NullInt64{Int64: 42, Valid: true}); got != 42 {
		t.Fatalf("unexpected value: %d", got)
	}
}

func TestNullableTime(t *testing.T) {
	if nullableTime(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
	var zero time.Time
	if nullableTime(&zero) != nil {
		t.Fatalf("expected nil for zero time")
	}
	now := time.Date(2026, 9, 6, 15, 0, 0, 0, time.UTC)
	if got := nullableTime(&now); got == nil || !got.Equal(now) {
		t.Fatalf("unexpected time pointer: %v", got)
	}
}

func TestEncodeDecodeJSON(t *testing.T) {
	type window struct {
		StartOver int `json:"start_over"`
		EndOver   int `json:"end_over"`
	}

	encoded := encodeJSON(window{StartOver: 1, EndOver: 6})
	if encoded != `{"start_over":1,"end_over":6}` {
		t.Fatalf("unexpected encoded value: %s", encoded)
	}

	var decoded window
	decodeJSON(encoded, &decoded)
	if decoded.StartOver != 1 || decoded.EndOver != 6 {
		t.Fatalf("unexpected decoded value: %+v", decoded)
	}

	decoded = window{}
	decodeJSON("null", &decoded)
	if decoded.StartOver != 0 {
		t.Fatalf("null input must leave the target untouched, got %+v", decoded)
	}
	decodeJSON("  ", &decoded)
	if decoded.EndOver != 0 {
		t.Fatalf("blank input must leave the target untouched, got %+v", decoded)
	}
}
