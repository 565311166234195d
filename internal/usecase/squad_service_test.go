package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fieldcircle/cricket-admin/internal/domain/player"
	"github.com/fieldcircle/cricket-admin/internal/infrastructure/repository/memory"
)

func testSquadRoster(n int) ([]player.Player, []string) {
	players := make([]player.Player, 0, n)
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("ind-squad-%02d", i)
		players = append(players, player.Player{
			ID:     id,
			TeamID: memory.TeamIDIndia,
			Name:   fmt.Sprintf("India Player %d", i),
			Role:   player.RoleBatter,
		})
		ids = append(ids, id)
	}
	return players, ids
}

func newSquadServiceForTest() (*SquadService, []string) {
	players, ids := testSquadRoster(18)
	players = append(players, player.Player{
		ID:     "pak-squad-01",
		TeamID: memory.TeamIDPakistan,
		Name:   "Pakistan Player 1",
		Role:   player.RoleBatter,
	})

	service := NewSquadService(
		memory.NewSquadRepository(nil),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewSeriesRepository(memory.SeedSeries()),
		memory.NewPlayerRepository(players),
		&sequenceIDGenerator{prefix: "squad"},
	)
	return service, ids
}

func TestSquadService_Create(t *testing.T) {
	service, roster := newSquadServiceForTest()
	ctx := t.Context()

	created, err := service.Create(ctx, UpsertSquadInput{
		TeamID:         memory.TeamIDIndia,
		SeriesID:       memory.SeriesIDAsiaCupGroupA,
		Name:           "India Group Stage Squad",
		PlayerIDs:      roster[:11],
		CaptainID:      roster[0],
		WicketKeeperID: roster[1],
	})
	if err != nil {
		t.Fatalf("create squad: %v", err)
	}

	if created.ID != "squad-001" {
		t.Fatalf("unexpected squad id: %s", created.ID)
	}
	if len(created.PlayerIDs) != 11 || created.CaptainID != roster[0] {
		t.Fatalf("unexpected squad: %+v", created)
	}

	got, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get squad: %v", err)
	}
	if got.Name != "India Group Stage Squad" {
		t.Fatalf("unexpected squad name: %s", got.Name)
	}
}

func TestSquadService_Create_Validation(t *testing.T) {
	service, roster := newSquadServiceForTest()
	ctx := t.Context()

	base := UpsertSquadInput{
		TeamID:    memory.TeamIDIndia,
		SeriesID:  memory.SeriesIDAsiaCupGroupA,
		Name:      "India Squad",
		PlayerIDs: roster[:11],
	}

	cases := []struct {
		name    string
		mutate  func(*UpsertSquadInput)
		wantErr error
	}{
		{"too few players", func(in *UpsertSquadInput) { in.PlayerIDs = roster[:10] }, ErrInvalidInput},
		{"too many players", func(in *UpsertSquadInput) {
			in.PlayerIDs = append(append([]string{}, roster...), "ind-squad-19")
		}, ErrInvalidInput},
		{"duplicate player", func(in *UpsertSquadInput) {
			in.PlayerIDs = append(append([]string{}, roster[:10]...), roster[0])
		}, ErrInvalidInput},
		{"blank player id", func(in *UpsertSquadInput) {
			in.PlayerIDs = append(append([]string{}, roster[:10]...), " ")
		}, ErrInvalidInput},
		{"player from other team", func(in *UpsertSquadInput) {
			in.PlayerIDs = append(append([]string{}, roster[:10]...), "pak-squad-01")
		}, ErrInvalidInput},
		{"captain outside squad", func(in *UpsertSquadInput) { in.CaptainID = roster[12] }, ErrInvalidInput},
		{"wicket keeper outside squad", func(in *UpsertSquadInput) { in.WicketKeeperID = roster[12] }, ErrInvalidInput},
		{"unknown team", func(in *UpsertSquadInput) { in.TeamID = "missing" }, ErrNotFound},
		{"unknown series", func(in *UpsertSquadInput) { in.SeriesID = "missing" }, ErrNotFound},
		{"unknown player", func(in *UpsertSquadInput) {
			in.PlayerIDs = append(append([]string{}, roster[:10]...), "ghost")
		}, ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			if _, err := service.Create(ctx, input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSquadService_Update(t *testing.T) {
	service, roster := newSquadServiceForTest()
	ctx := t.Context()

	created, err := service.Create(ctx, UpsertSquadInput{
		TeamID:    memory.TeamIDIndia,
		SeriesID:  memory.SeriesIDAsiaCupGroupA,
		Name:      "India Squad",
		PlayerIDs: roster[:11],
	})
	if err != nil {
		t.Fatalf("create squad: %v", err)
	}

	updated, err := service.Update(ctx, created.ID, UpsertSquadInput{
		TeamID:    memory.TeamIDIndia,
		SeriesID:  memory.SeriesIDAsiaCupGroupA,
		Name:      "India Squad v2",
		PlayerIDs: roster[:12],
	})
	if err != nil {
		t.Fatalf("update squad: %v", err)
	}
	if updated.ID != created.ID || updated.Name != "India Squad v2" || len(updated.PlayerIDs) != 12 {
		t.Fatalf("unexpected squad: %+v", updated)
	}

	if _, err := service.Update(ctx, "missing", UpsertSquadInput{
		TeamID:    memory.TeamIDIndia,
		SeriesID:  memory.SeriesIDAsiaCupGroupA,
		PlayerIDs: roster[:11],
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSquadService_ListBySeries(t *testing.T) {
	service, roster := newSquadServiceForTest()
	ctx := t.Context()

	if _, err := service.Create(ctx, UpsertSquadInput{
		TeamID:    memory.TeamIDIndia,
		SeriesID:  memory.SeriesIDAsiaCupGroupA,
		Name:      "India Squad",
		PlayerIDs: roster[:11],
	}); err != nil {
		t.Fatalf("create squad: %v", err)
	}

	items, err := service.ListBySeries(ctx, memory.SeriesIDAsiaCupGroupA)
	if err != nil {
		t.Fatalf("list squads: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one squad, got %d", len(items))
	}

	if _, err := service.ListBySeries(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSquadService_Delete(t *testing.T) {
	service, roster := newSquadServiceForTest()
	ctx := t.Context()

	created, err := service.Create(ctx, UpsertSquadInput{
		TeamID:    memory.TeamIDIndia,
		SeriesID:  memory.SeriesIDAsiaCupGroupA,
		Name:      "India Squad",
		PlayerIDs: roster[:11],
	})
	if err != nil {
		t.Fatalf("create squad: %v", err)
	}

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete squad: %v", err)
	}
	if err := service.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
