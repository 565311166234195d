package postgres

import (
	"database/sql"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func nullableInt64(value int64) *int64 {
	if value <= 0 {
		return nil
	}
	return &value
}

func nullStringToString(value sql.NullString) string {
	if !value.Valid {
		return ""
	}
	return value.String
}

func nullInt64ToInt64(value sql.NullInt64) int64 {
	if !value.Valid {
		return 0
	}
	return value.Int64
}

func nullableTime(value *time.Time) *time.Time {
	if value == nil || value.IsZero() {
		return nil
	}
	return value
}

func encodeJSON(value any) string {
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "null"
	}
	return string(encoded)
}

func decodeJSON(raw string, out any) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return
	}
	_ = sonic.Unmarshal([]byte(raw), out)
}
