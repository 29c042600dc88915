package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/season"
)

func TestFixtureRepositoryReplaceSeason(t *testing.T) {
	ctx := context.Background()
	repo := NewFixtureRepository()

	first := []fixture.Fixture{
		{ID: "f1", SeasonID: 1, Gameweek: 1, HomeID: "a", AwayID: "b"},
		{ID: "f2", SeasonID: 1, Gameweek: 1, HomeID: "c", AwayID: "d"},
	}
	if err := repo.ReplaceSeason(ctx, 1, first); err != nil {
		t.Fatalf("replace: %v", err)
	}

	replacement := []fixture.Fixture{{ID: "f9", SeasonID: 1, Gameweek: 1, HomeID: "a", AwayID: "c"}}
	if err := repo.ReplaceSeason(ctx, 1, replacement); err != nil {
		t.Fatalf("replace: %v", err)
	}

	stored, err := repo.ListBySeason(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "f9" {
		t.Fatalf("old schedule survived the replace: %+v", stored)
	}

	empty, err := repo.ListBySeason(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("unexpected fixtures for unknown season: %+v", empty)
	}
}

func TestFixtureRepositoryUpdateScores(t *testing.T) {
	ctx := context.Background()
	repo := NewFixtureRepository()

	if err := repo.ReplaceSeason(ctx, 1, []fixture.Fixture{
		{ID: "f1", SeasonID: 1, Gameweek: 1, HomeID: "a", AwayID: "b"},
		{ID: "f2", SeasonID: 1, Gameweek: 1, HomeID: "c", AwayID: "d"},
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	played := fixture.Fixture{ID: "f1", SeasonID: 1, Gameweek: 1, HomeID: "a", AwayID: "b"}
	played.RecordScore(2, 1)
	if err := repo.UpdateScores(ctx, []fixture.Fixture{played}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, err := repo.ListBySeason(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, fx := range stored {
		switch fx.ID {
		case "f1":
			if !fx.Played || fx.HomeGoals == nil || *fx.HomeGoals != 2 || *fx.AwayGoals != 1 {
				t.Fatalf("score not stored: %+v", fx)
			}
		case "f2":
			if fx.Played {
				t.Fatalf("untouched fixture marked played: %+v", fx)
			}
		}
	}
}

func TestHistoryRepositoryAppendAndLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository()

	latest, err := repo.LatestSeasonID(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest != 0 {
		t.Fatalf("fresh store should report season 0: %d", latest)
	}

	for gw := 1; gw <= 3; gw++ {
		if err := repo.Append(ctx, season.Snapshot{SeasonID: 2, Gameweek: gw}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	rows, err := repo.ListBySeason(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected snapshot count: got=%d want=3", len(rows))
	}
	for i, snap := range rows {
		if snap.Gameweek != i+1 {
			t.Fatalf("snapshots out of order at %d: %+v", i, snap)
		}
	}

	latest, err = repo.LatestSeasonID(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest != 2 {
		t.Fatalf("unexpected latest season: got=%d want=2", latest)
	}
}
