package usecase

import (
	"fmt"
	"math/rand"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
	"github.com/riskibarqy/league-simulator/internal/platform/id"
)

const (
	rosterSize = 25

	meanAge = 26
	minAge  = 18
	maxAge  = 34

	minPrice = 50
	maxPrice = 200
)

// rosterQuota is the minimum positional spread every generated squad
// must satisfy before the remaining slots are filled freely.
var rosterQuota = map[player.Position]int{
	player.PositionGoalkeeper:   1,
	player.PositionCentreBack:   2,
	player.PositionFullBack:     2,
	player.PositionDefensiveMid: 1,
	player.PositionHoldingMid:   1,
	player.PositionAttackingMid: 1,
	player.PositionWinger:       2,
	player.PositionStriker:      1,
}

var firstNames = []string{
	"Oliver", "George", "Harry", "Jack", "Charlie", "Thomas", "Jacob",
	"Alfie", "Freddie", "Oscar", "Arthur", "Henry", "Leo", "Archie",
	"Joshua", "Ethan", "James", "Lucas", "William", "Noah", "Daniel",
	"Samuel", "Edward", "Joseph", "Max", "Mason", "Reuben", "Callum",
}

var lastNames = []string{
	"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Johnson",
	"Davies", "Robinson", "Wright", "Thompson", "Evans", "Walker", "White",
	"Roberts", "Green", "Hall", "Wood", "Jackson", "Clarke", "Harris",
	"Lewis", "Turner", "Scott", "Cooper", "Ward", "Morris", "Bailey",
}

// PlayerGenService rolls new squad members. A roll is roughly one in
// six a goalkeeper, whose attribute groups are drawn from keeper bands
// (strong gloves, weak feet) while outfielders get the inverse.
type PlayerGenService struct {
	ids id.Generator
}

func NewPlayerGenService(ids id.Generator) *PlayerGenService {
	return &PlayerGenService{ids: ids}
}

// Generate rolls a single player for teamID. Attributes are drawn
// uniformly in [1,20] per value with a rejection pass on each group sum,
// position and ability derive from the finished attribute set.
func (s *PlayerGenService) Generate(rng *rand.Rand, teamID string) (player.Player, error) {
	keeper := rng.Intn(6) == 0
	attrs := rollAttributes(rng, keeper)
	if err := attrs.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrAttributeRange, err)
	}

	playerID, err := s.ids.NewID("player")
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.Player{
		ID:          playerID,
		Name:        firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
		Age:         rollAge(rng),
		Nationality: "England",
		TeamID:      teamID,
		Attributes:  attrs,
		Price:       float64(minPrice + rng.Intn(maxPrice-minPrice+1)),
	}
	p.Position, p.CurrentAbility = attrs.BestPosition()
	return p, nil
}

// GenerateRoster rolls a full squad for teamID: quota positions first,
// then free slots up to the roster size. Rolls that land on an already
// saturated position before the quota is met are redrawn.
func (s *PlayerGenService) GenerateRoster(rng *rand.Rand, teamID string) ([]player.Player, error) {
	needed := 0
	for _, n := range rosterQuota {
		needed += n
	}

	squad := make([]player.Player, 0, rosterSize)
	filled := make(map[player.Position]int, len(rosterQuota))

	// Bounded redraw loop; the position distribution is close enough to
	// uniform that the quota fills within a few hundred rolls in practice.
	const maxRolls = 10000
	for rolls := 0; len(squad) < rosterSize; rolls++ {
		if rolls >= maxRolls {
			return nil, fmt.Errorf("%w: positional quota unsatisfied after %d rolls", ErrInvalidInput, maxRolls)
		}

		p, err := s.Generate(rng, teamID)
		if err != nil {
			return nil, err
		}

		if needed > 0 {
			quota := rosterQuota[p.Position]
			if filled[p.Position] >= quota {
				continue
			}
			filled[p.Position]++
			needed--
			squad = append(squad, p)
			continue
		}
		squad = append(squad, p)
	}
	return squad, nil
}

func rollAge(rng *rand.Rand) int {
	for {
		age := poissonDraw(rng, meanAge)
		if age >= minAge && age <= maxAge {
			return age
		}
	}
}

func rollAttributes(rng *rand.Rand, keeper bool) player.Attributes {
	if keeper {
		return player.Attributes{
			Technical:   rollTechnical(rng, 14, 98),
			Mental:      rollMental(rng, 14, 196),
			Physical:    rollPhysical(rng, 8, 54),
			Goalkeeping: rollGoalkeeping(rng, 44, 72),
			Intrinsic:   rollIntrinsic(rng, 54, 106),
		}
	}
	return player.Attributes{
		Technical:   rollTechnical(rng, 98, 196),
		Mental:      rollMental(rng, 98, 196),
		Physical:    rollPhysical(rng, 54, 106),
		Goalkeeping: rollGoalkeeping(rng, 5, 25),
		Intrinsic:   rollIntrinsic(rng, 54, 106),
	}
}

// rollGroup draws n values in [1,20], rejecting draws whose sum falls
// outside [lo,hi].
func rollGroup(rng *rand.Rand, n, lo, hi int) []int {
	values := make([]int, n)
	for {
		total := 0
		for i := range values {
			values[i] = player.AttributeMin + rng.Intn(player.AttributeMax-player.AttributeMin+1)
			total += values[i]
		}
		if total >= lo && total <= hi {
			return values
		}
	}
}

func rollTechnical(rng *rand.Rand, lo, hi int) player.Technical {
	v := rollGroup(rng, 14, lo, hi)
	return player.Technical{
		Corners: v[0], Crossing: v[1], Dribbling: v[2], Finishing: v[3],
		FirstTouch: v[4], FreeKickTaking: v[5], Heading: v[6], LongShots: v[7],
		LongThrows: v[8], Marking: v[9], Passing: v[10], PenaltyTaking: v[11],
		Tackling: v[12], Technique: v[13],
	}
}

func rollMental(rng *rand.Rand, lo, hi int) player.Mental {
	v := rollGroup(rng, 14, lo, hi)
	return player.Mental{
		Aggression: v[0], Anticipation: v[1], Bravery: v[2], Composure: v[3],
		Concentration: v[4], Decisions: v[5], Determination: v[6], Flair: v[7],
		Leadership: v[8], OffTheBall: v[9], Positioning: v[10], Teamwork: v[11],
		Vision: v[12], WorkRate: v[13],
	}
}

func rollPhysical(rng *rand.Rand, lo, hi int) player.Physical {
	v := rollGroup(rng, 8, lo, hi)
	return player.Physical{
		Acceleration: v[0], Agility: v[1], Balance: v[2], JumpingReach: v[3],
		NaturalFitness: v[4], Pace: v[5], Stamina: v[6], Strength: v[7],
	}
}

func rollGoalkeeping(rng *rand.Rand, lo, hi int) player.Goalkeeping {
	v := rollGroup(rng, 5, lo, hi)
	return player.Goalkeeping{
		Diving: v[0], Handling: v[1], Kicking: v[2], Positioning: v[3], Reflexes: v[4],
	}
}

func rollIntrinsic(rng *rand.Rand, lo, hi int) player.Intrinsic {
	v := rollGroup(rng, 8, lo, hi)
	return player.Intrinsic{
		Confidence: v[0], Consistency: v[1], Professionalism: v[2], BigGamePlayer: v[3],
		Loyalty: v[4], Versatility: v[5], CareerAmbition: v[6], MoneyAmbition: v[7],
	}
}
