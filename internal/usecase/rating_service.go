package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

// RatedTeam is the capability the match engine needs from a team: scalar
// strengths plus recent form. Both the scalar-backed and roster-backed
// variants satisfy it, so the engine never branches on which kind of team
// it was given.
type RatedTeam interface {
	ID() string
	Offense() float64
	Defense() float64
	Form() team.Form
}

// RosterProvider resolves a team's live players. Injected rather than
// looked up from ambient state so the rating model stays testable. The
// returned pointers are the working set the match engine mutates, so one
// provider must back a whole season.
type RosterProvider interface {
	PlayersOf(ctx context.Context, teamID string) ([]*player.Player, error)
}

// RatingService derives per-match offense/defense strength for a team.
type RatingService struct {
	rosters RosterProvider
}

func NewRatingService(rosters RosterProvider) *RatingService {
	return &RatingService{rosters: rosters}
}

// ScalarTeam adapts a plain Team whose Offense/Defense fields already hold
// precomputed ratings; strength is an identity pass-through, form untouched.
type ScalarTeam struct {
	Team *team.Team
}

func (s ScalarTeam) ID() string      { return s.Team.ID }
func (s ScalarTeam) Offense() float64 { return s.Team.Offense }
func (s ScalarTeam) Defense() float64 { return s.Team.Defense }
func (s ScalarTeam) Form() team.Form  { return s.Team.Form }

// RosterTeam carries a resolved roster so strength is recomputed from
// player attributes each time it is read.
type RosterTeam struct {
	Team    *team.Team
	Players []*player.Player

	offense float64
	defense float64
}

func (r *RosterTeam) ID() string       { return r.Team.ID }
func (r *RosterTeam) Offense() float64 { return r.offense }
func (r *RosterTeam) Defense() float64 { return r.defense }
func (r *RosterTeam) Form() team.Form  { return r.Team.Form }

// Rated wraps a team in the variant matching its data: teams with a roster
// get attribute-derived strength with the form factor folded in, roster-less
// teams pass their raw scalars through. The returned value is safe to use
// for a whole gameweek; strengths are frozen at wrap time.
func (s *RatingService) Rated(ctx context.Context, t *team.Team) (RatedTeam, error) {
	if len(t.Roster) == 0 && (t.Offense != 0 || t.Defense != 0) {
		return ScalarTeam{Team: t}, nil
	}

	players, err := s.rosters.PlayersOf(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve roster for %s: %w", t.ID, err)
	}

	offense, defense, err := TeamStrength(players, t.Form)
	if err != nil {
		return nil, fmt.Errorf("rate %s: %w", t.ID, err)
	}
	return &RosterTeam{Team: t, Players: players, offense: offense, defense: defense}, nil
}

// TeamStrength computes the weighted offense/defense sums over the non-GK
// roster, scaled by the form factor.
//
// Only the final weighted term is averaged by roster size, not the whole
// sum. Changing this would shift every simulated scoreline, so it stays.
func TeamStrength(players []*player.Player, form team.Form) (offense, defense float64, err error) {
	outfield := 0
	for _, p := range players {
		if !p.IsGoalkeeper() {
			outfield++
		}
	}
	if len(players) == 0 || outfield == 0 {
		return 0, 0, fmt.Errorf("%w: %d players, %d outfield", ErrInsufficientRoster, len(players), outfield)
	}

	size := float64(len(players))
	for _, p := range players {
		if p.IsGoalkeeper() {
			continue
		}
		t, m := p.Attributes.Technical, p.Attributes.Mental
		offense += float64(t.Finishing)*1.0 +
			float64(t.Passing)*0.6 +
			float64(t.LongShots)*0.3 +
			float64(t.Heading)*0.4 +
			float64(t.Crossing)*0.4 +
			float64(t.Dribbling)*0.4/size
		defense += float64(t.Tackling)*1.0 +
			float64(t.Marking)*0.6 +
			float64(t.Heading)*0.4 +
			float64(m.Composure)*0.4/size
	}

	factor := form.Factor()
	return offense * factor, defense * factor, nil
}
