package player

const (
	primaryWeight   = 0.6
	secondaryWeight = 0.3
	tertiaryWeight  = 0.1

	// Keepers are judged on their keeping pool alone: a heavier primary
	// term replaces the tertiary one.
	keeperPrimaryWeight   = 0.7
	keeperSecondaryWeight = 0.3
)

type positionProfile struct {
	position  Position
	primary   func(a Attributes) []int
	secondary func(a Attributes) []int
}

var positionProfiles = []positionProfile{
	{
		position: PositionGoalkeeper,
		primary: func(a Attributes) []int {
			gk := a.Goalkeeping
			return []int{gk.Diving, gk.Handling, gk.Kicking, gk.Positioning, gk.Reflexes}
		},
		secondary: func(a Attributes) []int {
			return []int{a.Mental.Concentration, a.Mental.Composure}
		},
	},
	{
		position: PositionCentreBack,
		primary: func(a Attributes) []int {
			return []int{a.Technical.Marking, a.Technical.Tackling, a.Technical.Heading}
		},
		secondary: func(a Attributes) []int {
			return []int{a.Physical.Strength, a.Mental.Positioning}
		},
	},
	{
		position: PositionFullBack,
		primary: func(a Attributes) []int {
			return []int{a.Technical.Crossing, a.Technical.Marking, a.Technical.Tackling}
		},
		secondary: func(a Attributes) []int {
			return []int{a.Physical.Pace, a.Physical.Stamina, a.Mental.Teamwork}
		},
	},
	{
		position: PositionDefensiveMid,
		primary: func(a Attributes) []int {
			return []int{a.Mental.Positioning, a.Technical.Marking, a.Technical.Tackling}
		},
		secondary: func(a Attributes) []int {
			return []int{a.Mental.Vision, a.Technical.Passing, a.Physical.Stamina}
		},
	},
	{
		position: PositionHoldingMid,
		primary: func(a Attributes) []int {
			return []int{a.Technical.Passing, a.Mental.Decisions}
		},
		secondary: func(a Attributes) []int {
			return []int{a.Mental.Teamwork, a.Physical.Stamina, a.Mental.Composure}
		},
	},
	{
		position: PositionAttackingMid,
		primary: func(a Attributes) []int {
			return []int{a.Technical.Passing, a.Technical.Finishing, a.Mental.Vision}
		},
		secondary: func(a Attributes) []int {
			return []int{a.Mental.Flair, a.Technical.Dribbling, a.Technical.FirstTouch}
		},
	},
	{
		position: PositionWinger,
		primary: func(a Attributes) []int {
			return []int{a.Technical.Crossing, a.Technical.Dribbling, a.Physical.Pace}
		},
		secondary: func(a Attributes) []int {
			return []int{a.Mental.Positioning, a.Mental.Flair, a.Technical.Passing}
		},
	},
	{
		position: PositionStriker,
		primary: func(a Attributes) []int {
			return []int{a.Technical.Finishing, a.Technical.FirstTouch, a.Mental.Composure}
		},
		secondary: func(a Attributes) []int {
			return []int{a.Technical.Dribbling, a.Mental.Positioning, a.Physical.Strength}
		},
	},
}

// ratedPool is the attribute universe a position's tertiary score draws from:
// everything rated for outfield or keeper play, minus what the position
// already counts as primary or secondary.
func ratedPool(a Attributes) []int {
	t, m, ph, gk := a.Technical, a.Mental, a.Physical, a.Goalkeeping
	return []int{
		t.Crossing, t.Dribbling, t.Finishing, t.FirstTouch, t.FreeKickTaking,
		t.Heading, t.LongShots, t.LongThrows, t.Marking, t.Passing, t.Tackling,
		m.Aggression, m.Bravery, m.Composure, m.Concentration, m.Decisions,
		m.Determination, m.Flair, m.Leadership, m.Positioning, m.Teamwork,
		m.Vision, m.WorkRate,
		ph.NaturalFitness, ph.Pace, ph.Stamina, ph.Strength,
		gk.Diving, gk.Handling, gk.Kicking, gk.Positioning, gk.Reflexes,
	}
}

// BestPosition scores every position profile as primary*0.6 + secondary*0.3
// + tertiary*0.1 (tertiary being the remaining rated pool), except the
// goalkeeper profile which uses primary*0.7 + secondary*0.3 with no tertiary
// term. It returns the highest-scoring position together with its score,
// which doubles as the player's current ability.
func (a Attributes) BestPosition() (Position, float64) {
	best := positionProfiles[0].position
	bestScore := -1.0

	for _, profile := range positionProfiles {
		primary := profile.primary(a)
		secondary := profile.secondary(a)

		used := make(map[int]int, len(primary)+len(secondary))
		for _, v := range primary {
			used[v]++
		}
		for _, v := range secondary {
			used[v]++
		}

		tertiarySum := 0
		for _, v := range ratedPool(a) {
			if used[v] > 0 {
				used[v]--
				continue
			}
			tertiarySum += v
		}

		pw, sw, tw := primaryWeight, secondaryWeight, tertiaryWeight
		if profile.position == PositionGoalkeeper {
			pw, sw, tw = keeperPrimaryWeight, keeperSecondaryWeight, 0
		}

		score := float64(sum(primary))*pw +
			float64(sum(secondary))*sw +
			float64(tertiarySum)*tw
		if score > bestScore {
			best = profile.position
			bestScore = score
		}
	}

	return best, bestScore
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
