package team

import "fmt"

// Result is a single match outcome letter as recorded in a team's form.
type Result byte

const (
	ResultWin  Result = 'W'
	ResultDraw Result = 'D'
	ResultLoss Result = 'L'
)

// FormLength bounds the recent-results history.
const FormLength = 5

// Form is the last few results, oldest first, capped at FormLength.
type Form []Result

// Append records a result, evicting the oldest entry once full. The
// receiver-by-value-return idiom keeps forms per-team; they are never
// shared between instances.
func (f Form) Append(r Result) Form {
	f = append(f, r)
	if len(f) > FormLength {
		f = f[len(f)-FormLength:]
	}
	return f
}

// Score sums the form as +2 per win, -1 per loss, 0 per draw.
func (f Form) Score() int {
	score := 0
	for _, r := range f {
		switch r {
		case ResultWin:
			score += 2
		case ResultLoss:
			score--
		}
	}
	return score
}

// Factor converts form into a performance multiplier, neutral when empty.
func (f Form) Factor() float64 {
	return 1 + 0.01*float64(f.Score())
}

func (f Form) String() string {
	buf := make([]byte, len(f))
	for i, r := range f {
		buf[i] = byte(r)
	}
	return string(buf)
}

// ParseForm rebuilds a Form from its string encoding, e.g. "WWDLW".
func ParseForm(s string) (Form, error) {
	form := make(Form, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch r := Result(s[i]); r {
		case ResultWin, ResultDraw, ResultLoss:
			form = append(form, r)
		default:
			return nil, fmt.Errorf("invalid form result %q", s[i])
		}
	}
	if len(form) > FormLength {
		return nil, fmt.Errorf("form longer than %d results", FormLength)
	}
	return form, nil
}

// Team is a club competing in one league season. Offense/Defense are the
// precomputed scalar ratings carried between seasons; the season counters
// reset at season start, Budget persists.
type Team struct {
	ID           string
	Name         string
	Offense      float64
	Defense      float64
	Points       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Form         Form
	Budget       float64
	Roster       []string
}

// Clone returns a detached copy. Form and Roster get fresh backing
// arrays so a clone never aliases the live team's slices.
func (t *Team) Clone() Team {
	out := *t
	if t.Form != nil {
		out.Form = make(Form, len(t.Form))
		copy(out.Form, t.Form)
	}
	if t.Roster != nil {
		out.Roster = make([]string, len(t.Roster))
		copy(out.Roster, t.Roster)
	}
	return out
}

// GoalDifference is always derived, never stored.
func (t *Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// ResetSeason zeroes the season-scoped fields. Ratings, budget and roster
// survive season boundaries.
func (t *Team) ResetSeason() {
	t.Points = 0
	t.Wins = 0
	t.Draws = 0
	t.Losses = 0
	t.GoalsFor = 0
	t.GoalsAgainst = 0
	t.Form = nil
}

// Record applies one side of a played fixture to the season counters.
func (t *Team) Record(scored, conceded int) Result {
	t.GoalsFor += scored
	t.GoalsAgainst += conceded

	var r Result
	switch {
	case scored > conceded:
		t.Points += 3
		t.Wins++
		r = ResultWin
	case scored < conceded:
		t.Losses++
		r = ResultLoss
	default:
		t.Points++
		t.Draws++
		r = ResultDraw
	}
	t.Form = t.Form.Append(r)
	return r
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}
