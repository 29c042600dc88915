package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/riskibarqy/league-simulator/internal/domain/player"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

// LeagueService covers league bootstrap and the read side: teams,
// rosters and individual players.
type LeagueService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	playerGen  *PlayerGenService
	logger     *logging.Logger
}

func NewLeagueService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	playerGen *PlayerGenService,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		playerGen:  playerGen,
		logger:     logger,
	}
}

// GenerateSquads rolls a full roster for every team that does not have
// one yet and returns the number of squads created. Teams that already
// carry a roster are left alone.
func (s *LeagueService) GenerateSquads(ctx context.Context, rng *rand.Rand) (int, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("load teams: %w", err)
	}
	if len(teams) == 0 {
		return 0, fmt.Errorf("%w: no teams in league", ErrNotFound)
	}

	generated := 0
	for i := range teams {
		t := &teams[i]
		if len(t.Roster) > 0 {
			continue
		}

		squad, err := s.playerGen.GenerateRoster(rng, t.ID)
		if err != nil {
			return generated, fmt.Errorf("generate squad for %s: %w", t.Name, err)
		}
		if err := s.playerRepo.UpsertPlayers(ctx, squad); err != nil {
			return generated, fmt.Errorf("persist squad for %s: %w", t.Name, err)
		}

		roster := make([]string, 0, len(squad))
		for _, p := range squad {
			roster = append(roster, p.ID)
		}
		t.Roster = roster
		generated++
	}

	if generated > 0 {
		if err := s.teamRepo.UpsertTeams(ctx, teams); err != nil {
			return generated, fmt.Errorf("persist teams: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "squads generated", "count", generated)
	return generated, nil
}

func (s *LeagueService) ListTeams(ctx context.Context) ([]team.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *LeagueService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	item, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *LeagueService) ListTeamPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	return s.playerRepo.ListByTeam(ctx, teamID)
}

func (s *LeagueService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	item, ok, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	return item, nil
}
