package powerplay

import (
	"errors"
	"testing"
)

func TestValidateWindow(t *testing.T) {
	if err := ValidateWindow(1, 6); err != nil {
		t.Fatalf("expected valid window, got %v", err)
	}
	if err := ValidateWindow(0, 6); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for start over 0, got %v", err)
	}
	if err := ValidateWindow(6, 6); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for end == start, got %v", err)
	}
	if err := ValidateWindow(8, 6); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for end < start, got %v", err)
	}
}

func TestValidateFielders(t *testing.T) {
	for _, count := range []int{2, 3, 4, 5} {
		if err := ValidateFielders(count); err != nil {
			t.Fatalf("expected %d fielders valid, got %v", count, err)
		}
	}
	if err := ValidateFielders(1); !errors.Is(err, ErrInvalidFielders) {
		t.Fatalf("expected ErrInvalidFielders, got %v", err)
	}
	if err := ValidateFielders(6); !errors.Is(err, ErrInvalidFielders) {
		t.Fatalf("expected ErrInvalidFielders, got %v", err)
	}
}

func TestWindowBounds(t *testing.T) {
	r := Record{StartOver: 1, EndOver: 6}

	if WindowContains(r, 0) {
		t.Fatal("over 0 should be outside the window")
	}
	if !WindowContains(r, 1) {
		t.Fatal("start over should be inside the window")
	}
	if !WindowContains(r, 6) {
		t.Fatal("end over is inclusive")
	}
	if WindowContains(r, 7) {
		t.Fatal("over 7 should be outside the window")
	}

	if WindowPassed(r, 6) {
		t.Fatal("window is not passed while the last over is in progress")
	}
	if !WindowPassed(r, 7) {
		t.Fatal("window should be passed at over 7")
	}
}

func TestStatusTransitions(t *testing.T) {
	if err := CanActivate(Record{Status: StatusPending}); err != nil {
		t.Fatalf("pending should be activatable, got %v", err)
	}
	if err := CanActivate(Record{Status: StatusActive}); err != nil {
		t.Fatalf("re-activating an active record is a no-op, got %v", err)
	}
	if err := CanActivate(Record{Status: StatusCompleted}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("completed is terminal, got %v", err)
	}

	if err := CanComplete(Record{Status: StatusActive}); err != nil {
		t.Fatalf("active should be completable, got %v", err)
	}
	if err := CanComplete(Record{Status: StatusPending}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending cannot complete directly, got %v", err)
	}
}

func TestCurrentViewOf(t *testing.T) {
	records := []Record{
		{ID: "pp-1", Status: StatusCompleted, Innings: 1, StartOver: 1, EndOver: 6},
		{ID: "pp-2", Status: StatusActive, Type: TypeBattingOptional, Innings: 1, StartOver: 11, EndOver: 16, MaxFieldersOutsideCircle: 4},
		{ID: "pp-3", Status: StatusPending, Innings: 2, StartOver: 1, EndOver: 6},
	}

	view := CurrentViewOf(records)
	if !view.HasActive {
		t.Fatal("expected an active view")
	}
	if view.RecordID != "pp-2" || view.MaxFieldersOutsideCircle != 4 {
		t.Fatalf("unexpected view: %+v", view)
	}

	empty := CurrentViewOf([]Record{{ID: "pp-1", Status: StatusPending}})
	if empty.HasActive {
		t.Fatal("expected no active view")
	}
}
