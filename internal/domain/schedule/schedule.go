// Package schedule generates double round-robin fixture lists with the
// circle method: fix the first team, rotate the rest, pair opposite ends of
// the circle each round.
package schedule

import (
	"errors"
	"fmt"
)

// ErrOddTeamCount is returned for leagues that cannot be paired every week.
var ErrOddTeamCount = errors.New("schedule requires an even team count")

// Pairing is one fixture slot inside a gameweek.
type Pairing struct {
	Home string
	Away string
}

// Gameweek is the set of pairings played in one round. Every team appears
// in exactly one pairing.
type Gameweek []Pairing

// DoubleRoundRobin builds 2(n-1) gameweeks for n teams: a single round-robin
// with home/away alternated by round parity, then a mirrored copy with
// venues swapped. Leagues of zero or one team produce an empty schedule;
// odd counts above one are an error.
func DoubleRoundRobin(teamIDs []string) ([]Gameweek, error) {
	n := len(teamIDs)
	if n < 2 {
		return nil, nil
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: got %d teams", ErrOddTeamCount, n)
	}

	firstHalf := singleRoundRobin(teamIDs)
	balanced := balanceHomeAway(firstHalf)

	full := make([]Gameweek, 0, 2*len(balanced))
	full = append(full, balanced...)
	for _, week := range balanced {
		mirrored := make(Gameweek, len(week))
		for i, p := range week {
			mirrored[i] = Pairing{Home: p.Away, Away: p.Home}
		}
		full = append(full, mirrored)
	}
	return full, nil
}

// singleRoundRobin runs the circle method: round r pairs position i with
// position n-1-i, then everything except the fixed first slot rotates by
// one. Covers every unordered pair exactly once over n-1 rounds.
func singleRoundRobin(teamIDs []string) []Gameweek {
	n := len(teamIDs)
	circle := make([]string, n)
	copy(circle, teamIDs)

	rounds := make([]Gameweek, 0, n-1)
	for r := 0; r < n-1; r++ {
		week := make(Gameweek, 0, n/2)
		for i := 0; i < n/2; i++ {
			week = append(week, Pairing{Home: circle[i], Away: circle[n-1-i]})
		}
		rounds = append(rounds, week)

		last := circle[n-1]
		copy(circle[2:], circle[1:n-1])
		circle[1] = last
	}
	return rounds
}

// balanceHomeAway swaps venues on odd rounds so the fixed team (and the
// rest of the circle) does not host every week of the half.
func balanceHomeAway(rounds []Gameweek) []Gameweek {
	balanced := make([]Gameweek, len(rounds))
	for r, week := range rounds {
		out := make(Gameweek, len(week))
		for i, p := range week {
			if r%2 == 1 {
				out[i] = Pairing{Home: p.Away, Away: p.Home}
			} else {
				out[i] = p
			}
		}
		balanced[r] = out
	}
	return balanced
}
