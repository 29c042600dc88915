package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/player"
	"github.com/riskibarqy/league-simulator/internal/domain/schedule"
	"github.com/riskibarqy/league-simulator/internal/domain/season"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

// prizeByRank is the end-of-season payout table. Flat amounts, not a
// formula; ranks past the table earn nothing.
var prizeByRank = map[int]float64{
	1: 100, 2: 80, 3: 70, 4: 60,
	5: 50, 6: 50, 7: 50, 8: 50, 9: 50,
	10: 40, 11: 40, 12: 40, 13: 40,
	14: 30, 15: 30, 16: 30, 17: 30,
}

// SeasonService drives a campaign gameweek by gameweek:
// NOT_STARTED -> IN_PROGRESS -> COMPLETE. Store access happens only at
// season start, after each gameweek (snapshot append) and at completion.
type SeasonService struct {
	matches   *MatchService
	standings *StandingService
	rosters   *RosterCache

	teamRepo    team.Repository
	playerRepo  player.Repository
	fixtureRepo fixture.Repository
	historyRepo season.HistoryRepository

	logger  *logging.Logger
	workers int
	seed    int64

	mu        sync.Mutex
	state     season.State
	seasonID  int
	teams     []*team.Team
	teamsByID map[string]*team.Team
	gameweeks [][]*fixture.Fixture
	nextWeek  int
	history   []season.Snapshot
}

func NewSeasonService(
	matches *MatchService,
	standings *StandingService,
	rosters *RosterCache,
	teamRepo team.Repository,
	playerRepo player.Repository,
	fixtureRepo fixture.Repository,
	historyRepo season.HistoryRepository,
	logger *logging.Logger,
	workers int,
	seed int64,
) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &SeasonService{
		matches:     matches,
		standings:   standings,
		rosters:     rosters,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		fixtureRepo: fixtureRepo,
		historyRepo: historyRepo,
		logger:      logger,
		workers:     workers,
		seed:        seed,
		state:       season.StateNotStarted,
	}
}

func (s *SeasonService) State() season.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SeasonService) SeasonID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seasonID
}

// Start loads the league, resets season-scoped state, builds the double
// round-robin and transitions to IN_PROGRESS. Restarting an in-progress
// season is an error; restarting after completion begins the next season.
func (s *SeasonService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == season.StateInProgress {
		return fmt.Errorf("%w: season %d still in progress", ErrInvalidSeasonState, s.seasonID)
	}

	stored, err := s.teamRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	if len(stored) == 0 {
		return fmt.Errorf("%w: no teams to schedule", ErrNotFound)
	}

	lastSeason, err := s.historyRepo.LatestSeasonID(ctx)
	if err != nil {
		return fmt.Errorf("read latest season id: %w", err)
	}

	teams := make([]*team.Team, 0, len(stored))
	byID := make(map[string]*team.Team, len(stored))
	ids := make([]string, 0, len(stored))
	for i := range stored {
		t := stored[i]
		t.ResetSeason()
		teams = append(teams, &t)
		byID[t.ID] = &t
		ids = append(ids, t.ID)
	}

	weeks, err := schedule.DoubleRoundRobin(ids)
	if err != nil {
		return err
	}

	seasonID := lastSeason + 1
	flat := make([]fixture.Fixture, 0, len(weeks)*len(teams)/2)
	gameweeks := make([][]*fixture.Fixture, len(weeks))
	for w, week := range weeks {
		gameweeks[w] = make([]*fixture.Fixture, 0, len(week))
		for i, p := range week {
			flat = append(flat, fixture.Fixture{
				ID:       fmt.Sprintf("s%d-gw%d-m%d", seasonID, w+1, i+1),
				SeasonID: seasonID,
				Gameweek: w + 1,
				HomeID:   p.Home,
				AwayID:   p.Away,
			})
		}
	}
	for i := range flat {
		gameweeks[flat[i].Gameweek-1] = append(gameweeks[flat[i].Gameweek-1], &flat[i])
	}
	if err := s.fixtureRepo.ReplaceSeason(ctx, seasonID, flat); err != nil {
		return fmt.Errorf("persist fixtures: %w", err)
	}

	s.rosters.Reset()
	for _, t := range teams {
		members, err := s.playerRepo.ListByTeam(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("load roster for %s: %w", t.ID, err)
		}
		for i := range members {
			members[i].ResetSeasonStats()
		}
		s.rosters.Load(t.ID, members)
	}

	s.seasonID = seasonID
	s.teams = teams
	s.teamsByID = byID
	s.gameweeks = gameweeks
	s.nextWeek = 0
	s.history = nil
	s.state = season.StateInProgress

	s.logger.InfoContext(ctx, "season started",
		"season_id", seasonID,
		"teams", len(teams),
		"gameweeks", len(gameweeks),
	)
	return nil
}

// AdvanceGameweek simulates the next unplayed gameweek, applies every
// result and appends a table snapshot. The fixtures of one gameweek touch
// disjoint team pairs, so they fan out across the worker pool; each fixture
// draws from its own seed-derived source to keep outcomes reproducible
// regardless of scheduling order.
func (s *SeasonService) AdvanceGameweek(ctx context.Context) (season.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != season.StateInProgress {
		return season.Snapshot{}, fmt.Errorf("%w: cannot advance while %s", ErrInvalidSeasonState, s.state)
	}

	week := s.gameweeks[s.nextWeek]
	gameweek := s.nextWeek + 1

	results, err := s.simulateWeek(ctx, week, gameweek)
	if err != nil {
		return season.Snapshot{}, err
	}
	for _, r := range results {
		s.logger.DebugContext(ctx, "fixture played",
			"season_id", s.seasonID,
			"gameweek", gameweek,
			"fixture", r.Fixture.String(),
		)
	}

	played := make([]fixture.Fixture, 0, len(week))
	for _, fx := range week {
		played = append(played, *fx)
	}
	if err := s.fixtureRepo.UpdateScores(ctx, played); err != nil {
		return season.Snapshot{}, fmt.Errorf("persist gameweek %d scores: %w", gameweek, err)
	}

	snapshot := s.standings.Snapshot(s.seasonID, gameweek, s.teams)
	if err := s.historyRepo.Append(ctx, snapshot); err != nil {
		return season.Snapshot{}, fmt.Errorf("append snapshot: %w", err)
	}
	s.history = append(s.history, snapshot)
	s.nextWeek++

	if s.nextWeek == len(s.gameweeks) {
		s.state = season.StateComplete
		if err := s.settle(ctx); err != nil {
			return season.Snapshot{}, err
		}
	}
	return snapshot, nil
}

// RunSeason advances until the season completes.
func (s *SeasonService) RunSeason(ctx context.Context) error {
	for s.State() == season.StateInProgress {
		if _, err := s.AdvanceGameweek(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeasonService) simulateWeek(ctx context.Context, week []*fixture.Fixture, gameweek int) ([]season.MatchResult, error) {
	results := make([]season.MatchResult, len(week))

	if s.workers == 1 || len(week) == 1 {
		for i, fx := range week {
			r, err := s.simulateFixture(ctx, fx, gameweek, i)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	errs := make([]error, len(week))
	var wg sync.WaitGroup
	for i, fx := range week {
		i, fx := i, fx
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = s.simulateFixture(ctx, fx, gameweek, i)
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit fixture to worker pool: %w", err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *SeasonService) simulateFixture(ctx context.Context, fx *fixture.Fixture, gameweek, index int) (season.MatchResult, error) {
	home, ok := s.teamsByID[fx.HomeID]
	if !ok {
		return season.MatchResult{}, fmt.Errorf("%w: team %s", ErrNotFound, fx.HomeID)
	}
	away, ok := s.teamsByID[fx.AwayID]
	if !ok {
		return season.MatchResult{}, fmt.Errorf("%w: team %s", ErrNotFound, fx.AwayID)
	}

	rng := rand.New(rand.NewSource(s.fixtureSeed(gameweek, index)))
	return s.matches.Simulate(ctx, rng, fx, home, away)
}

func (s *SeasonService) fixtureSeed(gameweek, index int) int64 {
	return s.seed + int64(s.seasonID)*1_000_000_007 + int64(gameweek)*1_000_003 + int64(index)*7919
}

// settle pays the prize table by final rank and flushes teams and players
// back to their stores. Runs exactly once, when the last gameweek lands.
func (s *SeasonService) settle(ctx context.Context) error {
	table := s.standings.Table(s.teams)
	for _, row := range table {
		prize := prizeByRank[row.Position]
		if t, ok := s.teamsByID[row.TeamID]; ok {
			t.Budget += prize
		}
	}

	updated := make([]team.Team, 0, len(s.teams))
	for _, t := range s.teams {
		updated = append(updated, *t)
	}
	if err := s.teamRepo.UpsertTeams(ctx, updated); err != nil {
		return fmt.Errorf("persist settled teams: %w", err)
	}

	players := make([]player.Player, 0)
	for _, p := range s.rosters.All() {
		players = append(players, *p)
	}
	if len(players) > 0 {
		if err := s.playerRepo.UpsertPlayers(ctx, players); err != nil {
			return fmt.Errorf("persist player stats: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "season settled",
		"season_id", s.seasonID,
		"champion", table[0].TeamName,
		"points", table[0].Points,
	)
	return nil
}

// Table is the live ranked table of the current (or just finished) season.
func (s *SeasonService) Table() []season.TableRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.standings.Table(s.teams)
}

// SeasonHistory returns the stored snapshots of any season, current or past.
func (s *SeasonService) SeasonHistory(ctx context.Context, seasonID int) ([]season.Snapshot, error) {
	snapshots, err := s.historyRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list snapshots for season %d: %w", seasonID, err)
	}
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("%w: no history for season %d", ErrNotFound, seasonID)
	}
	return snapshots, nil
}

// History returns the per-gameweek snapshots taken so far this season.
func (s *SeasonService) History() []season.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]season.Snapshot, len(s.history))
	copy(out, s.history)
	return out
}

// Teams returns detached copies of the season teams, frozen under the
// season lock. Callers such as the prediction service may read them while
// a gameweek is being simulated; the live working set is never handed out.
func (s *SeasonService) Teams() []team.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]team.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t.Clone())
	}
	return out
}

// RemainingFixtures returns unplayed fixtures grouped by gameweek.
func (s *SeasonService) RemainingFixtures() [][]fixture.Fixture {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]fixture.Fixture, 0, len(s.gameweeks)-s.nextWeek)
	for w := s.nextWeek; w < len(s.gameweeks); w++ {
		week := make([]fixture.Fixture, 0, len(s.gameweeks[w]))
		for _, fx := range s.gameweeks[w] {
			week = append(week, *fx)
		}
		out = append(out, week)
	}
	return out
}

// Rerate blends each team's ratings with its just-finished season output:
// offense toward 99 * goalsFor/maxGoalsFor, defense toward
// 99 * minGoalsAgainst/goalsAgainst, each averaged with the old value.
// Valid only once a season is COMPLETE.
func (s *SeasonService) Rerate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != season.StateComplete {
		return fmt.Errorf("%w: cannot re-rate while %s", ErrInvalidSeasonState, s.state)
	}

	maxFor, minAgainst := 0, -1
	for _, t := range s.teams {
		if t.GoalsFor > maxFor {
			maxFor = t.GoalsFor
		}
		if minAgainst < 0 || t.GoalsAgainst < minAgainst {
			minAgainst = t.GoalsAgainst
		}
	}
	if maxFor == 0 {
		return fmt.Errorf("%w: no goals scored this season", ErrInvalidInput)
	}

	for _, t := range s.teams {
		newOffense := 99 * float64(t.GoalsFor) / float64(maxFor)
		t.Offense = (t.Offense + newOffense) / 2
		if t.GoalsAgainst > 0 {
			newDefense := 99 * float64(minAgainst) / float64(t.GoalsAgainst)
			t.Defense = (t.Defense + newDefense) / 2
		}
	}

	updated := make([]team.Team, 0, len(s.teams))
	for _, t := range s.teams {
		updated = append(updated, *t)
	}
	if err := s.teamRepo.UpsertTeams(ctx, updated); err != nil {
		return fmt.Errorf("persist re-rated teams: %w", err)
	}

	s.logger.InfoContext(ctx, "teams re-rated", "season_id", s.seasonID)
	return nil
}
