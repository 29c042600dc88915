package player

import (
	"strings"
	"testing"
)

func uniformAttributes(v int) Attributes {
	return Attributes{
		Technical: Technical{
			Corners: v, Crossing: v, Dribbling: v, Finishing: v, FirstTouch: v,
			FreeKickTaking: v, Heading: v, LongShots: v, LongThrows: v, Marking: v,
			Passing: v, PenaltyTaking: v, Tackling: v, Technique: v,
		},
		Mental: Mental{
			Aggression: v, Anticipation: v, Bravery: v, Composure: v, Concentration: v,
			Decisions: v, Determination: v, Flair: v, Leadership: v, OffTheBall: v,
			Positioning: v, Teamwork: v, Vision: v, WorkRate: v,
		},
		Physical: Physical{
			Acceleration: v, Agility: v, Balance: v, JumpingReach: v,
			NaturalFitness: v, Pace: v, Stamina: v, Strength: v,
		},
		Goalkeeping: Goalkeeping{
			Diving: v, Handling: v, Kicking: v, Positioning: v, Reflexes: v,
		},
		Intrinsic: Intrinsic{
			Confidence: v, Consistency: v, Professionalism: v, BigGamePlayer: v,
			Loyalty: v, Versatility: v, CareerAmbition: v, MoneyAmbition: v,
		},
	}
}

func TestAttributesValidate(t *testing.T) {
	if err := uniformAttributes(AttributeMin).Validate(); err != nil {
		t.Fatalf("minimum attributes should be valid: %v", err)
	}
	if err := uniformAttributes(AttributeMax).Validate(); err != nil {
		t.Fatalf("maximum attributes should be valid: %v", err)
	}

	bad := uniformAttributes(10)
	bad.Technical.Finishing = AttributeMax + 1
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected error for out-of-range attribute")
	}
	if !strings.Contains(err.Error(), "finishing") {
		t.Fatalf("error should name the offending attribute: %v", err)
	}
}

func TestBestPositionFavoursKeeperSkills(t *testing.T) {
	attrs := uniformAttributes(5)
	attrs.Goalkeeping = Goalkeeping{Diving: 20, Handling: 20, Kicking: 20, Positioning: 20, Reflexes: 20}

	pos, ability := attrs.BestPosition()
	if pos != PositionGoalkeeper {
		t.Fatalf("unexpected position: got=%s want=%s", pos, PositionGoalkeeper)
	}
	if ability <= 0 {
		t.Fatalf("ability should be positive: %v", ability)
	}
}

func TestBestPositionFavoursFinishers(t *testing.T) {
	attrs := uniformAttributes(5)
	attrs.Technical.Finishing = 20
	attrs.Mental.OffTheBall = 20
	attrs.Mental.Composure = 20

	pos, _ := attrs.BestPosition()
	if pos == PositionGoalkeeper {
		t.Fatalf("outfield profile classified as keeper")
	}
}

func TestIsGoalkeeper(t *testing.T) {
	p := Player{Position: PositionGoalkeeper}
	if !p.IsGoalkeeper() {
		t.Fatal("keeper not recognised")
	}
	p.Position = PositionStriker
	if p.IsGoalkeeper() {
		t.Fatal("striker recognised as keeper")
	}
}

func TestResetSeasonStats(t *testing.T) {
	p := Player{Stats: SeasonStats{Goals: 9, Appearances: 20, Rating: 4.1}}
	p.ResetSeasonStats()
	if p.Stats != (SeasonStats{}) {
		t.Fatalf("stats not zeroed: %+v", p.Stats)
	}
}
