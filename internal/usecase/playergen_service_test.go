package usecase

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
)

type sequentialIDs struct {
	next int
}

func (g *sequentialIDs) NewID(prefix string) (string, error) {
	g.next++
	return fmt.Sprintf("%s-%04d", prefix, g.next), nil
}

func technicalSum(t player.Technical) int {
	return t.Corners + t.Crossing + t.Dribbling + t.Finishing + t.FirstTouch +
		t.FreeKickTaking + t.Heading + t.LongShots + t.LongThrows + t.Marking +
		t.Passing + t.PenaltyTaking + t.Tackling + t.Technique
}

func goalkeepingSum(g player.Goalkeeping) int {
	return g.Diving + g.Handling + g.Kicking + g.Positioning + g.Reflexes
}

func TestGeneratePlayer(t *testing.T) {
	svc := NewPlayerGenService(&sequentialIDs{})
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		p, err := svc.Generate(rng, "team-x")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		if p.ID == "" || p.Name == "" {
			t.Fatalf("missing identity: %+v", p)
		}
		if p.TeamID != "team-x" {
			t.Fatalf("unexpected team id: %q", p.TeamID)
		}
		if p.Nationality != "England" {
			t.Fatalf("unexpected nationality: %q", p.Nationality)
		}
		if p.Age < 18 || p.Age > 34 {
			t.Fatalf("age outside range: %d", p.Age)
		}
		if p.Price < 50 || p.Price > 200 {
			t.Fatalf("price outside range: %v", p.Price)
		}
		if err := p.Attributes.Validate(); err != nil {
			t.Fatalf("invalid attributes: %v", err)
		}
		if p.Position == "" || p.CurrentAbility <= 0 {
			t.Fatalf("position not derived: pos=%q ability=%v", p.Position, p.CurrentAbility)
		}

		tech := technicalSum(p.Attributes.Technical)
		gk := goalkeepingSum(p.Attributes.Goalkeeping)
		// The keeper and outfield goalkeeping bands do not overlap, so
		// the group sum reveals which template a roll used.
		switch {
		case gk >= 44 && gk <= 72:
			if tech < 14 || tech > 98 {
				t.Fatalf("keeper roll with outfield feet: tech=%d gk=%d", tech, gk)
			}
		case gk >= 5 && gk <= 25:
			if tech < 98 || tech > 196 {
				t.Fatalf("outfield roll with keeper feet: tech=%d gk=%d", tech, gk)
			}
		default:
			t.Fatalf("goalkeeping sum outside both bands: %d", gk)
		}
	}
}

func TestGenerateRoster(t *testing.T) {
	svc := NewPlayerGenService(&sequentialIDs{})
	rng := rand.New(rand.NewSource(11))

	squad, err := svc.GenerateRoster(rng, "team-x")
	if err != nil {
		t.Fatalf("generate roster: %v", err)
	}
	if len(squad) != 25 {
		t.Fatalf("unexpected squad size: got=%d want=25", len(squad))
	}

	counts := make(map[player.Position]int)
	ids := make(map[string]bool)
	for _, p := range squad {
		counts[p.Position]++
		if ids[p.ID] {
			t.Fatalf("duplicate player id: %s", p.ID)
		}
		ids[p.ID] = true
	}

	for pos, quota := range rosterQuota {
		if counts[pos] < quota {
			t.Fatalf("position %s below quota: got=%d want>=%d", pos, counts[pos], quota)
		}
	}
}

func TestGenerateRosterDeterministicUnderSeed(t *testing.T) {
	roll := func() []player.Player {
		svc := NewPlayerGenService(&sequentialIDs{})
		squad, err := svc.GenerateRoster(rand.New(rand.NewSource(21)), "team-x")
		if err != nil {
			t.Fatalf("generate roster: %v", err)
		}
		return squad
	}

	first, second := roll(), roll()
	for i := range first {
		if first[i].Name != second[i].Name || first[i].Position != second[i].Position ||
			first[i].Attributes != second[i].Attributes {
			t.Fatalf("squad member %d differs between identically seeded rolls", i)
		}
	}
}
