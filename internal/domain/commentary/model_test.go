package commentary

import "testing"

func TestIsValidExtraType(t *testing.T) {
	for _, value := range []string{"", "WIDE", "no_ball", " bye ", "LEG_BYE", "PENALTY"} {
		if !IsValidExtraType(value) {
			t.Fatalf("expected %q to be a valid extra type", value)
		}
	}
	if IsValidExtraType("OVERTHROW") {
		t.Fatal("expected OVERTHROW to be invalid")
	}
}

func TestIsValidDismissalType(t *testing.T) {
	for _, value := range []string{"BOWLED", "caught", "LBW", "RUN_OUT", "STUMPED", "HIT_WICKET", "RETIRED"} {
		if !IsValidDismissalType(value) {
			t.Fatalf("expected %q to be a valid dismissal type", value)
		}
	}
	if IsValidDismissalType("TIMED_OUT") {
		t.Fatal("expected TIMED_OUT to be invalid")
	}
	if IsValidDismissalType("") {
		t.Fatal("expected empty dismissal type to be invalid")
	}
}

func TestIsLegalDelivery(t *testing.T) {
	if !IsLegalDelivery(BallEvent{Runs: 4}) {
		t.Fatal("plain delivery must count toward the over")
	}
	if !IsLegalDelivery(BallEvent{Extras: 1, ExtraType: ExtraBye}) {
		t.Fatal("bye must count toward the over")
	}
	if IsLegalDelivery(BallEvent{Extras: 1, ExtraType: ExtraWide}) {
		t.Fatal("wide must not count toward the over")
	}
	if IsLegalDelivery(BallEvent{Extras: 1, ExtraType: "no_ball"}) {
		t.Fatal("no-ball must not count toward the over")
	}
}

func TestRunsHelpers(t *testing.T) {
	e := BallEvent{Runs: 4, Extras: 1}
	if TotalRuns(e) != 5 {
		t.Fatalf("expected 5 total runs, got %d", TotalRuns(e))
	}
	if !IsBoundary(e) {
		t.Fatal("expected boundary for 4 bat runs")
	}
	if IsSix(e) {
		t.Fatal("did not expect six for 4 bat runs")
	}
	if !IsSix(BallEvent{Runs: 6}) {
		t.Fatal("expected six for 6 bat runs")
	}
}
