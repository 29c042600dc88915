package player

import "fmt"

// Position is the best on-pitch role derived from a player's attributes.
type Position string

const (
	PositionGoalkeeper   Position = "GK"
	PositionCentreBack   Position = "CB"
	PositionFullBack     Position = "FB"
	PositionDefensiveMid Position = "DM"
	PositionHoldingMid   Position = "HM"
	PositionAttackingMid Position = "CAM"
	PositionWinger       Position = "W"
	PositionStriker      Position = "ST"
)

const (
	// AttributeMin and AttributeMax bound every generated attribute.
	AttributeMin = 1
	AttributeMax = 20
)

// Technical covers ball-playing skills.
type Technical struct {
	Corners        int
	Crossing       int
	Dribbling      int
	Finishing      int
	FirstTouch     int
	FreeKickTaking int
	Heading        int
	LongShots      int
	LongThrows     int
	Marking        int
	Passing        int
	PenaltyTaking  int
	Tackling       int
	Technique      int
}

// Mental covers decision-making and temperament.
type Mental struct {
	Aggression    int
	Anticipation  int
	Bravery       int
	Composure     int
	Concentration int
	Decisions     int
	Determination int
	Flair         int
	Leadership    int
	OffTheBall    int
	Positioning   int
	Teamwork      int
	Vision        int
	WorkRate      int
}

// Physical covers athletic capacity.
type Physical struct {
	Acceleration   int
	Agility        int
	Balance        int
	JumpingReach   int
	NaturalFitness int
	Pace           int
	Stamina        int
	Strength       int
}

// Goalkeeping covers keeper-specific skills.
type Goalkeeping struct {
	Diving      int
	Handling    int
	Kicking     int
	Positioning int
	Reflexes    int
}

// Intrinsic covers hidden personality traits.
type Intrinsic struct {
	Confidence      int
	Consistency     int
	Professionalism int
	BigGamePlayer   int
	Loyalty         int
	Versatility     int
	CareerAmbition  int
	MoneyAmbition   int
}

// Attributes bundles every rated facet of a player. Values sit in
// [AttributeMin, AttributeMax] once validated and never change after
// generation.
type Attributes struct {
	Technical   Technical
	Mental      Mental
	Physical    Physical
	Goalkeeping Goalkeeping
	Intrinsic   Intrinsic
}

// SeasonStats accumulates per-season player output. Rating grows raw during
// a match and is rescaled to the [1,5] display range at full time.
type SeasonStats struct {
	Appearances   int
	Goals         int
	Assists       int
	Shots         int
	Saves         int
	YellowCards   int
	RedCards      int
	ManOfTheMatch int
	Rating        float64
}

// Player is a generated, rated squad member.
type Player struct {
	ID             string
	Name           string
	Age            int
	Nationality    string
	TeamID         string
	Attributes     Attributes
	Position       Position
	CurrentAbility float64
	Price          float64
	Stats          SeasonStats
}

// IsGoalkeeper reports whether the player is excluded from outfield
// strength sums and shot attribution.
func (p *Player) IsGoalkeeper() bool {
	return p.Position == PositionGoalkeeper
}

// ResetSeasonStats zeroes the season-scoped counters at season start.
func (p *Player) ResetSeasonStats() {
	p.Stats = SeasonStats{}
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	return p.Attributes.Validate()
}

type namedAttribute struct {
	name  string
	value int
}

// Validate reports the first attribute outside [AttributeMin, AttributeMax].
func (a Attributes) Validate() error {
	for _, attr := range a.named() {
		if attr.value < AttributeMin || attr.value > AttributeMax {
			return fmt.Errorf("attribute %s=%d outside [%d,%d]",
				attr.name, attr.value, AttributeMin, AttributeMax)
		}
	}
	return nil
}

func (a Attributes) named() []namedAttribute {
	t, m, ph, gk, in := a.Technical, a.Mental, a.Physical, a.Goalkeeping, a.Intrinsic
	return []namedAttribute{
		{"corners", t.Corners},
		{"crossing", t.Crossing},
		{"dribbling", t.Dribbling},
		{"finishing", t.Finishing},
		{"first_touch", t.FirstTouch},
		{"free_kick_taking", t.FreeKickTaking},
		{"heading", t.Heading},
		{"long_shots", t.LongShots},
		{"long_throws", t.LongThrows},
		{"marking", t.Marking},
		{"passing", t.Passing},
		{"penalty_taking", t.PenaltyTaking},
		{"tackling", t.Tackling},
		{"technique", t.Technique},
		{"aggression", m.Aggression},
		{"anticipation", m.Anticipation},
		{"bravery", m.Bravery},
		{"composure", m.Composure},
		{"concentration", m.Concentration},
		{"decisions", m.Decisions},
		{"determination", m.Determination},
		{"flair", m.Flair},
		{"leadership", m.Leadership},
		{"off_the_ball", m.OffTheBall},
		{"positioning", m.Positioning},
		{"teamwork", m.Teamwork},
		{"vision", m.Vision},
		{"work_rate", m.WorkRate},
		{"acceleration", ph.Acceleration},
		{"agility", ph.Agility},
		{"balance", ph.Balance},
		{"jumping_reach", ph.JumpingReach},
		{"natural_fitness", ph.NaturalFitness},
		{"pace", ph.Pace},
		{"stamina", ph.Stamina},
		{"strength", ph.Strength},
		{"gk_diving", gk.Diving},
		{"gk_handling", gk.Handling},
		{"gk_kicking", gk.Kicking},
		{"gk_positioning", gk.Positioning},
		{"gk_reflexes", gk.Reflexes},
		{"confidence", in.Confidence},
		{"consistency", in.Consistency},
		{"professionalism", in.Professionalism},
		{"big_game_player", in.BigGamePlayer},
		{"loyalty", in.Loyalty},
		{"versatility", in.Versatility},
		{"career_ambition", in.CareerAmbition},
		{"money_ambition", in.MoneyAmbition},
	}
}
