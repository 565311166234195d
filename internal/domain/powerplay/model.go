package powerplay

import (
	"errors"
	"strings"
	"time"
)

const (
	TypeMandatory       = "MANDATORY"
	TypeBattingOptional = "BATTING_OPTIONAL"
	TypeBowlingOptional = "BOWLING_OPTIONAL"
)

const (
	StatusPending   = "PENDING"
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
)

const (
	MinFieldersOutsideCircle = 2
	MaxFieldersOutsideCircle = 5
)

var (
	ErrInvalidWindow     = errors.New("powerplay window end over must be greater than start over")
	ErrInvalidFielders   = errors.New("fielders outside circle must be between 2 and 5")
	ErrInvalidType       = errors.New("unknown powerplay type")
	ErrInvalidTransition = errors.New("invalid powerplay status transition")
	ErrNoActivePowerplay = errors.New("no active powerplay")
	ErrRecordNotEditable = errors.New("powerplay window can only be edited while pending")
)

// Stats accumulates scoring while a powerplay is active. Written only by
// commentary ingestion, never settable through the admin API.
type Stats struct {
	Runs           int     `json:"runs"`
	Wickets        int     `json:"wickets"`
	OversCompleted float64 `json:"oversCompleted"`
	RunRate        float64 `json:"runRate"`
	Boundaries     int     `json:"boundaries"`
	Sixes          int     `json:"sixes"`
}

// Record is one configured fielding-restriction window for a match innings.
type Record struct {
	ID                       string
	MatchID                  string
	Type                     string
	Status                   string
	Innings                  int
	StartOver                int
	EndOver                  int
	MaxFieldersOutsideCircle int
	IsMandatory              bool
	Description              string
	Stats                    Stats
	ActivatedAt              *time.Time
	CompletedAt              *time.Time
}

// CurrentView is a read-only snapshot of whichever record is active.
type CurrentView struct {
	HasActive                bool
	RecordID                 string
	Type                     string
	Innings                  int
	StartOver                int
	EndOver                  int
	MaxFieldersOutsideCircle int
}

func NormalizeType(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsValidType(value string) bool {
	switch NormalizeType(value) {
	case TypeMandatory, TypeBattingOptional, TypeBowlingOptional:
		return true
	default:
		return false
	}
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusPending
	}
	return status
}

// WindowContains reports whether the over falls inside the record's window.
// The end over is inclusive: a powerplay runs through the whole of its last over.
func WindowContains(r Record, over int) bool {
	return over >= r.StartOver && over <= r.EndOver
}

// WindowPassed reports whether the over is strictly beyond the window, which
// is the only condition that completes an active record.
func WindowPassed(r Record, over int) bool {
	return over > r.EndOver
}

func ValidateWindow(startOver, endOver int) error {
	if startOver < 1 {
		return ErrInvalidWindow
	}
	if endOver <= startOver {
		return ErrInvalidWindow
	}
	return nil
}

func ValidateFielders(count int) error {
	if count < MinFieldersOutsideCircle || count > MaxFieldersOutsideCircle {
		return ErrInvalidFielders
	}
	return nil
}

// CanActivate gates the only legal path into ACTIVE. Transitions are
// one-directional: a completed record is terminal.
func CanActivate(r Record) error {
	switch r.Status {
	case StatusPending, StatusActive:
		return nil
	default:
		return ErrInvalidTransition
	}
}

func CanComplete(r Record) error {
	if r.Status != StatusActive {
		return ErrInvalidTransition
	}
	return nil
}

func CurrentViewOf(records []Record) CurrentView {
	for _, r := range records {
		if r.Status != StatusActive {
			continue
		}
		return CurrentView{
			HasActive:                true,
			RecordID:                 r.ID,
			Type:                     r.Type,
			Innings:                  r.Innings,
			StartOver:                r.StartOver,
			EndOver:                  r.EndOver,
			MaxFieldersOutsideCircle: r.MaxFieldersOutsideCircle,
		}
	}
	return CurrentView{}
}
