package memory

import (
	"time"

	"github.com/fieldcircle/cricket-admin/internal/domain/match"
	"github.com/fieldcircle/cricket-admin/internal/domain/player"
	"github.com/fieldcircle/cricket-admin/internal/domain/powerplay"
	"github.com/fieldcircle/cricket-admin/internal/domain/series"
	"github.com/fieldcircle/cricket-admin/internal/domain/squad"
	"github.com/fieldcircle/cricket-admin/internal/domain/team"
	"github.com/fieldcircle/cricket-admin/internal/domain/tournament"
)

const (
	TournamentIDAsiaCup = "asia-cup-2026"

	SeriesIDAsiaCupGroupA = "asia-cup-2026-group-a"

	TeamIDIndia    = "team-ind"
	TeamIDPakistan = "team-pak"

	MatchIDIndPakT20 = "match-ind-pak-t20-01"
)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:      TournamentIDAsiaCup,
			Name:    "Asia Cup",
			Season:  "2026",
			Format:  match.FormatT20,
			Status:  tournament.StatusOngoing,
			StartAt: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedSeries() []series.Series {
	return []series.Series{
		{
			ID:           SeriesIDAsiaCupGroupA,
			TournamentID: TournamentIDAsiaCup,
			Name:         "Group A",
			Format:       match.FormatT20,
			MatchCount:   6,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDIndia, Name: "India", ShortName: "IND", Country: "India"},
		{ID: TeamIDPakistan, Name: "Pakistan", ShortName: "PAK", Country: "Pakistan"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ind-bat-01", TeamID: TeamIDIndia, Name: "Rohit Sharma", Role: player.RoleBatter, BattingStyle: "RHB", ShirtNumber: 45},
		{ID: "ind-bat-02", TeamID: TeamIDIndia, Name: "Virat Kohli", Role: player.RoleBatter, BattingStyle: "RHB", ShirtNumber: 18},
		{ID: "ind-wk-01", TeamID: TeamIDIndia, Name: "Rishabh Pant", Role: player.RoleWicketKeeper, BattingStyle: "LHB", ShirtNumber: 17},
		{ID: "ind-ar-01", TeamID: TeamIDIndia, Name: "Hardik Pandya", Role: player.RoleAllRounder, BattingStyle: "RHB", BowlingStyle: "RM", ShirtNumber: 33},
		{ID: "ind-bwl-01", TeamID: TeamIDIndia, Name: "Jasprit Bumrah", Role: player.RoleBowler, BowlingStyle: "RF", ShirtNumber: 93},
		{ID: "ind-bwl-02", TeamID: TeamIDIndia, Name: "Kuldeep Yadav", Role: player.RoleBowler, BowlingStyle: "LWS", ShirtNumber: 23},
		{ID: "pak-bat-01", TeamID: TeamIDPakistan, Name: "Babar Azam", Role: player.RoleBatter, BattingStyle: "RHB", ShirtNumber: 56},
		{ID: "pak-wk-01", TeamID: TeamIDPakistan, Name: "Mohammad Rizwan", Role: player.RoleWicketKeeper, BattingStyle: "RHB", ShirtNumber: 16},
		{ID: "pak-ar-01", TeamID: TeamIDPakistan, Name: "Shadab Khan", Role: player.RoleAllRounder, BattingStyle: "RHB", BowlingStyle: "LWS", ShirtNumber: 7},
		{ID: "pak-bwl-01", TeamID: TeamIDPakistan, Name: "Shaheen Afridi", Role: player.RoleBowler, BowlingStyle: "LF", ShirtNumber: 10},
		{ID: "pak-bwl-02", TeamID: TeamIDPakistan, Name: "Haris Rauf", Role: player.RoleBowler, BowlingStyle: "RF", ShirtNumber: 97},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:               MatchIDIndPakT20,
			TournamentID:     TournamentIDAsiaCup,
			SeriesID:         SeriesIDAsiaCupGroupA,
			HomeTeamID:       TeamIDIndia,
			AwayTeamID:       TeamIDPakistan,
			Format:           match.FormatT20,
			Status:           match.StatusLive,
			Venue:            "Dubai International Stadium",
			StartAt:          time.Date(2026, 9, 6, 14, 30, 0, 0, time.UTC),
			TossWinnerTeamID: TeamIDIndia,
			TossDecision:     match.TossDecisionBat,
			CurrentInnings:   1,
			CurrentOver:      0,
			FeedRefID:        900231,
		},
	}
}

func SeedPowerplays() []powerplay.Record {
	return []powerplay.Record{
		{
			ID:                       "pp-ind-pak-1",
			MatchID:                  MatchIDIndPakT20,
			Type:                     powerplay.TypeMandatory,
			Status:                   powerplay.StatusPending,
			Innings:                  1,
			StartOver:                1,
			EndOver:                  6,
			MaxFieldersOutsideCircle: 2,
			IsMandatory:              true,
			Description:              "Mandatory powerplay, overs 1-6",
		},
		{
			ID:                       "pp-ind-pak-2",
			MatchID:                  MatchIDIndPakT20,
			Type:                     powerplay.TypeMandatory,
			Status:                   powerplay.StatusPending,
			Innings:                  2,
			StartOver:                1,
			EndOver:                  6,
			MaxFieldersOutsideCircle: 2,
			IsMandatory:              true,
			Description:              "Mandatory powerplay, overs 1-6",
		},
	}
}

func SeedSquads() []squad.Squad {
	return []squad.Squad{
		{
			ID:             "squad-ind-group-a",
			TeamID:         TeamIDIndia,
			SeriesID:       SeriesIDAsiaCupGroupA,
			Name:           "India Asia Cup Squad",
			PlayerIDs:      []string{"ind-bat-01", "ind-bat-02", "ind-wk-01", "ind-ar-01", "ind-bwl-01", "ind-bwl-02"},
			CaptainID:      "ind-bat-01",
			WicketKeeperID: "ind-wk-01",
		},
	}
}
