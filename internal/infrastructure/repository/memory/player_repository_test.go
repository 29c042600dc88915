package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
)

func TestPlayerRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository([]player.Player{
		{ID: "p1", Name: "One", TeamID: "a"},
		{ID: "p2", Name: "Two", TeamID: "a"},
		{ID: "p3", Name: "Three", TeamID: "b"},
	})

	roster, err := repo.ListByTeam(ctx, "a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("unexpected roster size: got=%d want=2", len(roster))
	}

	item, ok, err := repo.GetByID(ctx, "p3")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if item.Name != "Three" {
		t.Fatalf("unexpected player: %+v", item)
	}

	if _, ok, _ := repo.GetByID(ctx, "ghost"); ok {
		t.Fatal("missing player reported as found")
	}
}

func TestPlayerRepositoryUpsertUpdatesStats(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository([]player.Player{{ID: "p1", Name: "One", TeamID: "a"}})

	updated := player.Player{ID: "p1", Name: "One", TeamID: "a"}
	updated.Stats.Goals = 7
	if err := repo.UpsertPlayers(ctx, []player.Player{updated}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	item, ok, err := repo.GetByID(ctx, "p1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if item.Stats.Goals != 7 {
		t.Fatalf("stats not updated: %+v", item.Stats)
	}

	roster, err := repo.ListByTeam(ctx, "a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("upsert duplicated the player: %d entries", len(roster))
	}
}

func TestPlayerRepositoryUpsertMovesBetweenTeams(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository([]player.Player{{ID: "p1", Name: "One", TeamID: "a"}})

	if err := repo.UpsertPlayers(ctx, []player.Player{{ID: "p1", Name: "One", TeamID: "b"}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	oldRoster, err := repo.ListByTeam(ctx, "a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(oldRoster) != 0 {
		t.Fatalf("stale roster entry left behind: %+v", oldRoster)
	}

	newRoster, err := repo.ListByTeam(ctx, "b")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(newRoster) != 1 || newRoster[0].ID != "p1" {
		t.Fatalf("player not moved: %+v", newRoster)
	}
}
