package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/player"
	"github.com/riskibarqy/league-simulator/internal/domain/season"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

// EngineParams are the tunable constants of the goal model. The defaults
// encode a mild home advantage and cap expected goals at 3 per side.
type EngineParams struct {
	BaseHomeMean float64
	BaseAwayMean float64
	MaxMean      float64
}

func DefaultEngineParams() EngineParams {
	return EngineParams{
		BaseHomeMean: 1.7,
		BaseAwayMean: 1.2,
		MaxMean:      3.0,
	}
}

func (p EngineParams) Validate() error {
	if p.BaseHomeMean <= 0 || p.BaseAwayMean <= 0 {
		return fmt.Errorf("%w: base means must be > 0", ErrInvalidInput)
	}
	if p.MaxMean <= 0 {
		return fmt.Errorf("%w: max mean must be > 0", ErrInvalidInput)
	}
	return nil
}

// AdjustedMeans converts the two sides' strengths into Poisson parameters.
// The tanh term rewards an offense/defense edge without letting a mismatch
// run away or collapse to zero; the closeness factor lowers scoring when
// the sides are evenly rated.
func (p EngineParams) AdjustedMeans(homeOff, homeDef, awayOff, awayDef float64) (homeMean, awayMean float64) {
	homeScale := math.Max(0.1, 1+math.Tanh(0.03*(homeOff-awayDef)))
	awayScale := math.Max(0.1, 1+math.Tanh(0.03*(awayOff-homeDef)))

	closeness := math.Max(0.5, 1-0.02*math.Abs(homeOff-awayOff)-0.02*math.Abs(homeDef-awayDef))

	homeMean = clamp(p.BaseHomeMean*homeScale*closeness, 0, p.MaxMean)
	awayMean = clamp(p.BaseAwayMean*awayScale*closeness, 0, p.MaxMean)
	return homeMean, awayMean
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// MatchService simulates fixtures. All randomness flows through the
// caller-supplied source, and the draw order is fixed (means, goal counts,
// home shots, away shots, home goal events, away goal events, saves), so a
// seeded source replays identically.
type MatchService struct {
	ratings *RatingService
	params  EngineParams
}

func NewMatchService(ratings *RatingService, params EngineParams) *MatchService {
	return &MatchService{ratings: ratings, params: params}
}

// playerDelta stages one player's in-match accumulation so the commit can
// apply everything at once or not at all.
type playerDelta struct {
	player    *player.Player
	rawRating float64
	rating    float64
	shots     int
	goals     int
	assists   int
	saves     int
}

// Simulate plays one fixture. Rating failures surface before any state
// changes; on success the fixture, both teams' season counters and every
// involved player's stats are updated together.
func (s *MatchService) Simulate(ctx context.Context, rng *rand.Rand, fx *fixture.Fixture, home, away *team.Team) (season.MatchResult, error) {
	if fx.Played {
		return season.MatchResult{}, fmt.Errorf("%w: fixture %s already played", ErrInvalidInput, fx.ID)
	}

	ratedHome, err := s.ratings.Rated(ctx, home)
	if err != nil {
		return season.MatchResult{}, err
	}
	ratedAway, err := s.ratings.Rated(ctx, away)
	if err != nil {
		return season.MatchResult{}, err
	}

	homeMean, awayMean := s.params.AdjustedMeans(
		ratedHome.Offense(), ratedHome.Defense(),
		ratedAway.Offense(), ratedAway.Defense(),
	)

	homeGoals := poissonDraw(rng, homeMean)
	awayGoals := poissonDraw(rng, awayMean)

	homeDeltas := s.sideEvents(rng, ratedHome, homeGoals)
	awayDeltas := s.sideEvents(rng, ratedAway, awayGoals)
	keeperSaves(rng, homeDeltas)
	keeperSaves(rng, awayDeltas)
	normalizeRatings(homeDeltas)
	normalizeRatings(awayDeltas)

	// Commit: everything below mutates, nothing above did.
	fx.RecordScore(homeGoals, awayGoals)
	homeResult := home.Record(homeGoals, awayGoals)
	awayResult := away.Record(awayGoals, homeGoals)

	result := season.MatchResult{
		Fixture:     *fx,
		HomeGoals:   homeGoals,
		AwayGoals:   awayGoals,
		HomeResult:  homeResult,
		AwayResult:  awayResult,
		PlayerStats: make(map[string]season.PlayerMatchStats, len(homeDeltas)+len(awayDeltas)),
	}

	bestRating := math.Inf(-1)
	for _, d := range append(homeDeltas, awayDeltas...) {
		d.apply()
		result.PlayerStats[d.player.ID] = season.PlayerMatchStats{
			PlayerID: d.player.ID,
			Shots:    d.shots,
			Goals:    d.goals,
			Assists:  d.assists,
			Saves:    d.saves,
			Rating:   d.rating,
		}
		if d.rating > bestRating {
			bestRating = d.rating
			result.ManOfTheMatch = d.player.ID
		}
	}
	if result.ManOfTheMatch != "" {
		for _, d := range append(homeDeltas, awayDeltas...) {
			if d.player.ID == result.ManOfTheMatch {
				d.player.Stats.ManOfTheMatch++
				break
			}
		}
	}

	return result, nil
}

func (d *playerDelta) apply() {
	p := d.player
	p.Stats.Appearances++
	p.Stats.Shots += d.shots
	p.Stats.Goals += d.goals
	p.Stats.Assists += d.assists
	p.Stats.Saves += d.saves
	// Rolling average of normalized match ratings across the season.
	apps := float64(p.Stats.Appearances)
	p.Stats.Rating = (p.Stats.Rating*(apps-1) + d.rating) / apps
}

// sideEvents runs the secondary realism pass for one side: shot volume and
// xG attribution, then scorer/assister credit per goal. Scalar-backed teams
// have no roster and skip the pass.
func (s *MatchService) sideEvents(rng *rand.Rand, rated RatedTeam, goals int) []*playerDelta {
	roster, ok := rated.(*RosterTeam)
	if !ok || len(roster.Players) == 0 {
		return nil
	}

	deltas := make([]*playerDelta, len(roster.Players))
	outfield := make([]*playerDelta, 0, len(roster.Players))
	for i := range roster.Players {
		deltas[i] = &playerDelta{player: roster.Players[i]}
		if !roster.Players[i].IsGoalkeeper() {
			outfield = append(outfield, deltas[i])
		}
	}
	if len(outfield) == 0 {
		return deltas
	}

	// Shots always exceed goals: not every chance goes in.
	totalShots := goals + 1 + rng.Intn(10)
	for i := 0; i < totalShots; i++ {
		xg := 0.01 + rng.Float64()*0.98
		shooter := outfield[rng.Intn(len(outfield))]
		shooter.rawRating += xg * 0.1
		shooter.shots++
	}

	// Goal credit stays with the outfield; keepers earn their rating
	// through saves instead of the odd own-half scorer draw.
	for g := 0; g < goals; g++ {
		scorer := outfield[rng.Intn(len(outfield))]
		assister := outfield[rng.Intn(len(outfield))]
		for len(outfield) > 1 && assister == scorer {
			assister = outfield[rng.Intn(len(outfield))]
		}
		scorer.rawRating += 0.3 + rng.Float64()*0.2
		scorer.shots++
		scorer.goals++
		assister.rawRating += 0.1 + rng.Float64()*0.2
		assister.assists++
		for _, d := range deltas {
			if d != scorer {
				d.rawRating += 0.1 // team-effort credit
			}
		}
	}

	return deltas
}

func keeperSaves(rng *rand.Rand, deltas []*playerDelta) {
	for _, d := range deltas {
		if !d.player.IsGoalkeeper() {
			continue
		}
		saves := 1 + rng.Intn(5)
		d.saves += saves
		d.rawRating += float64(saves) * 0.1
	}
}

// normalizeRatings linearly rescales a team's raw in-match ratings so its
// min/max map onto [1,5]. Runs once per team per match; an all-equal team
// lands every player on the midpoint.
func normalizeRatings(deltas []*playerDelta) {
	if len(deltas) == 0 {
		return
	}

	minRaw, maxRaw := deltas[0].rawRating, deltas[0].rawRating
	for _, d := range deltas[1:] {
		minRaw = math.Min(minRaw, d.rawRating)
		maxRaw = math.Max(maxRaw, d.rawRating)
	}

	const lo, hi = 1.0, 5.0
	spread := maxRaw - minRaw
	for _, d := range deltas {
		if spread > 0 {
			d.rating = lo + (d.rawRating-minRaw)*(hi-lo)/spread
		} else {
			d.rating = (lo + hi) / 2
		}
	}
}

// poissonDraw samples a Poisson count by inverse-CDF multiplication.
func poissonDraw(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	limit := math.Exp(-lambda)
	p := 1.0
	k := 0
	for p > limit {
		k++
		p *= rng.Float64()
	}
	return k - 1
}
