package commentary

import (
	"strings"
	"time"
)

const (
	ExtraNone    = ""
	ExtraWide    = "WIDE"
	ExtraNoBall  = "NO_BALL"
	ExtraBye     = "BYE"
	ExtraLegBye  = "LEG_BYE"
	ExtraPenalty = "PENALTY"
)

const (
	DismissalBowled    = "BOWLED"
	DismissalCaught    = "CAUGHT"
	DismissalLBW       = "LBW"
	DismissalRunOut    = "RUN_OUT"
	DismissalStumped   = "STUMPED"
	DismissalHitWicket = "HIT_WICKET"
	DismissalRetired   = "RETIRED"
)

const BallsPerOver = 6

// BallEvent is one delivery in the ball-by-ball log.
type BallEvent struct {
	ID            string
	MatchID       string
	Innings       int
	Over          int
	BallInOver    int
	BatterID      string
	BowlerID      string
	Runs          int
	Extras        int
	ExtraType     string
	Wicket        bool
	DismissalType string
	Commentary    string
	CreatedAt     time.Time
}

func NormalizeExtraType(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsValidExtraType(value string) bool {
	switch NormalizeExtraType(value) {
	case ExtraNone, ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye, ExtraPenalty:
		return true
	default:
		return false
	}
}

func NormalizeDismissalType(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsValidDismissalType(value string) bool {
	switch NormalizeDismissalType(value) {
	case DismissalBowled, DismissalCaught, DismissalLBW, DismissalRunOut,
		DismissalStumped, DismissalHitWicket, DismissalRetired:
		return true
	default:
		return false
	}
}

// IsLegalDelivery reports whether the ball counts toward the over.
func IsLegalDelivery(e BallEvent) bool {
	switch NormalizeExtraType(e.ExtraType) {
	case ExtraWide, ExtraNoBall:
		return false
	default:
		return true
	}
}

// TotalRuns is bat runs plus extras for the delivery.
func TotalRuns(e BallEvent) int {
	return e.Runs + e.Extras
}

// IsBoundary reports a four struck off the bat.
func IsBoundary(e BallEvent) bool {
	return e.Runs == 4
}

// IsSix reports a six struck off the bat.
func IsSix(e BallEvent) bool {
	return e.Runs == 6
}
