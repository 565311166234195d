package match

import (
	"strings"
	"time"
)

const (
	FormatT20  = "T20"
	FormatODI  = "ODI"
	FormatTest = "TEST"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
	StatusAbandoned = "ABANDONED"
)

const (
	TossDecisionBat  = "BAT"
	TossDecisionBowl = "BOWL"
)

// InningsScore is the running total for one innings.
type InningsScore struct {
	Innings       int     `json:"innings"`
	BattingTeamID string  `json:"battingTeamId"`
	Runs          int     `json:"runs"`
	Wickets       int     `json:"wickets"`
	Overs         float64 `json:"overs"`
}

// Match is one fixture between two teams. CurrentInnings and CurrentOver are
// the authoritative live position, advanced by commentary ingestion or the
// live feed sweep.
type Match struct {
	ID               string
	TournamentID     string
	SeriesID         string
	HomeTeamID       string
	AwayTeamID       string
	Format           string
	Status           string
	Venue            string
	StartAt          time.Time
	TossWinnerTeamID string
	TossDecision     string
	CurrentInnings   int
	CurrentOver      int
	Scores           []InningsScore
	ResultSummary    string
	FeedRefID        int64
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func NormalizeFormat(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsValidFormat(value string) bool {
	switch NormalizeFormat(value) {
	case FormatT20, FormatODI, FormatTest:
		return true
	default:
		return false
	}
}

func IsValidStatus(value string) bool {
	switch NormalizeStatus(value) {
	case StatusScheduled, StatusLive, StatusCompleted, StatusAbandoned:
		return true
	default:
		return false
	}
}

func IsLive(m Match) bool {
	return NormalizeStatus(m.Status) == StatusLive
}

// OversPerInnings returns the innings length for limited-overs formats, or 0
// when the format has no over cap.
func OversPerInnings(format string) int {
	switch NormalizeFormat(format) {
	case FormatT20:
		return 20
	case FormatODI:
		return 50
	default:
		return 0
	}
}
