package tournament

import (
	"strings"
	"time"
)

const (
	StatusUpcoming  = "UPCOMING"
	StatusOngoing   = "ONGOING"
	StatusCompleted = "COMPLETED"
)

// Tournament groups series and matches under one competition.
type Tournament struct {
	ID      string
	Name    string
	Season  string
	Format  string
	Status  string
	StartAt time.Time
	EndAt   time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

func IsValidStatus(value string) bool {
	switch NormalizeStatus(value) {
	case StatusUpcoming, StatusOngoing, StatusCompleted:
		return true
	default:
		return false
	}
}
