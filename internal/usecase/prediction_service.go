package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

const defaultPredictionRuns = 1000

// PredictionService estimates championship odds by replaying the
// remaining fixtures many times over. Each run draws goals from the same
// adjusted-mean model the match engine uses but skips player events, so
// thousands of runs stay cheap and the live season is never touched.
type PredictionService struct {
	ratings *RatingService
	params  EngineParams
	runs    int
	workers int
}

func NewPredictionService(ratings *RatingService, params EngineParams, runs, workers int) *PredictionService {
	if runs < 1 {
		runs = defaultPredictionRuns
	}
	if workers < 1 {
		workers = 1
	}
	return &PredictionService{ratings: ratings, params: params, runs: runs, workers: workers}
}

// TeamOdds is one team's estimated title probability.
type TeamOdds struct {
	TeamID   string  `json:"teamId"`
	TeamName string  `json:"teamName"`
	Odds     float64 `json:"odds"`
}

type frozenTeam struct {
	id      string
	name    string
	offense float64
	defense float64
	points  int
	goalDiff int
	goalsFor int
}

// ChampionshipOdds returns per-team title probabilities sorted by odds
// descending, then name. Teams are passed by value so callers hand over a
// snapshot, not the live working set; ratings and form are frozen at call
// time and the seed makes the whole estimate reproducible.
func (s *PredictionService) ChampionshipOdds(
	ctx context.Context,
	teams []team.Team,
	remaining [][]fixture.Fixture,
	seed int64,
) ([]TeamOdds, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: no teams to predict", ErrInvalidInput)
	}

	base := make([]frozenTeam, 0, len(teams))
	index := make(map[string]int, len(teams))
	for i := range teams {
		t := &teams[i]
		rated, err := s.ratings.Rated(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", t.Name, err)
		}
		index[t.ID] = len(base)
		base = append(base, frozenTeam{
			id:       t.ID,
			name:     t.Name,
			offense:  rated.Offense(),
			defense:  rated.Defense(),
			points:   t.Points,
			goalDiff: t.GoalDifference(),
			goalsFor: t.GoalsFor,
		})
	}

	flat := make([]fixture.Fixture, 0)
	for _, week := range remaining {
		flat = append(flat, week...)
	}

	champions := make([]int, s.runs)
	p := pool.New().WithMaxGoroutines(s.workers)
	for run := 0; run < s.runs; run++ {
		run := run
		p.Go(func() {
			rng := rand.New(rand.NewSource(seed + int64(run)*6_700_417))
			champions[run] = s.playOut(rng, base, index, flat)
		})
	}
	p.Wait()

	titles := make([]int, len(base))
	for _, winner := range champions {
		titles[winner]++
	}

	out := make([]TeamOdds, 0, len(base))
	for i, t := range base {
		out = append(out, TeamOdds{
			TeamID:   t.id,
			TeamName: t.name,
			Odds:     float64(titles[i]) / float64(s.runs),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Odds != out[j].Odds {
			return out[i].Odds > out[j].Odds
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out, nil
}

// playOut simulates every remaining fixture once and returns the index
// of the champion under the standard tiebreak order.
func (s *PredictionService) playOut(rng *rand.Rand, base []frozenTeam, index map[string]int, flat []fixture.Fixture) int {
	standing := make([]frozenTeam, len(base))
	copy(standing, base)

	for _, fx := range flat {
		hi, ok := index[fx.HomeID]
		if !ok {
			continue
		}
		ai, ok := index[fx.AwayID]
		if !ok {
			continue
		}
		home, away := &standing[hi], &standing[ai]

		homeMean, awayMean := s.params.AdjustedMeans(home.offense, home.defense, away.offense, away.defense)
		hg := poissonDraw(rng, homeMean)
		ag := poissonDraw(rng, awayMean)

		home.goalsFor += hg
		home.goalDiff += hg - ag
		away.goalsFor += ag
		away.goalDiff += ag - hg
		switch {
		case hg > ag:
			home.points += 3
		case ag > hg:
			away.points += 3
		default:
			home.points++
			away.points++
		}
	}

	best := 0
	for i := 1; i < len(standing); i++ {
		if leadsTable(standing[i], standing[best]) {
			best = i
		}
	}
	return best
}

func leadsTable(a, b frozenTeam) bool {
	if a.points != b.points {
		return a.points > b.points
	}
	if a.goalDiff != b.goalDiff {
		return a.goalDiff > b.goalDiff
	}
	if a.goalsFor != b.goalsFor {
		return a.goalsFor > b.goalsFor
	}
	return a.name < b.name
}
