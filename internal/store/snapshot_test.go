package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ligafc/leaguehub/internal/database"
	"github.com/ligafc/leaguehub/internal/league"
	"github.com/ligafc/leaguehub/internal/migrations"
)

func testStore(t *testing.T) *SnapshotStore {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewSnapshotStore(db)
}

func TestLoadEmpty(t *testing.T) {
	s := testStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	state := league.Empty()
	state.Teams = []league.Team{{ID: "t1", Name: "Leões", Squad: []league.Player{
		{ID: "p1", Name: "Zico", Overall: 88, Position: "CAM/ST", TeamID: "t1"},
	}}}
	state.Challenges = []league.Challenge{
		{ID: "c1", ChallengerTeamID: "t1", ChallengedTeamID: "t2", Status: league.StatusPending, CreatedAt: 123},
	}

	if err := s.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", state, got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first := league.Empty()
	first.Teams = []league.Team{{ID: "old", Name: "Old", Squad: []league.Player{}}}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := league.Empty()
	second.Teams = []league.Team{{ID: "new", Name: "New", Squad: []league.Player{}}}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Teams) != 1 || got.Teams[0].ID != "new" {
		t.Errorf("last write must win, got %+v", got.Teams)
	}
}
