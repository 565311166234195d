package player

import "strings"

const (
	RoleBatter       = "BATTER"
	RoleBowler       = "BOWLER"
	RoleAllRounder   = "ALL_ROUNDER"
	RoleWicketKeeper = "WICKET_KEEPER"
)

// Player is one squad-eligible cricketer.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	Role         string
	BattingStyle string
	BowlingStyle string
	ShirtNumber  int
}

func NormalizeRole(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsValidRole(value string) bool {
	switch NormalizeRole(value) {
	case RoleBatter, RoleBowler, RoleAllRounder, RoleWicketKeeper:
		return true
	default:
		return false
	}
}
