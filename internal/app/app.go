package app

import (
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/league-simulator/internal/config"
	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/player"
	"github.com/riskibarqy/league-simulator/internal/domain/season"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-simulator/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/league-simulator/internal/platform/id"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
	"github.com/riskibarqy/league-simulator/internal/usecase"
)

type repositories struct {
	teams    team.Repository
	players  player.Repository
	fixtures fixture.Repository
	history  season.HistoryRepository
}

func buildRepositories(cfg config.Config) (repositories, error) {
	if cfg.StorageDriver == config.StoragePostgres {
		db, err := otelsqlx.Open("postgres", cfg.DBURL)
		if err != nil {
			return repositories{}, fmt.Errorf("open postgres: %w", err)
		}
		return repositories{
			teams:    postgres.NewTeamRepository(db),
			players:  postgres.NewPlayerRepository(db),
			fixtures: postgres.NewFixtureRepository(db),
			history:  postgres.NewHistoryRepository(db),
		}, nil
	}

	return repositories{
		teams:    memory.NewTeamRepository(memory.SeedTeams()),
		players:  memory.NewPlayerRepository(nil),
		fixtures: memory.NewFixtureRepository(),
		history:  memory.NewHistoryRepository(),
	}, nil
}

// App is the wired service graph. The CLI runner drives the services
// directly; the API binary serves them over HTTP.
type App struct {
	Server  *http.Server
	Seasons *usecase.SeasonService
	League  *usecase.LeagueService
}

func Build(cfg config.Config, logger *logging.Logger) (*App, error) {
	repos, err := buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	params := usecase.EngineParams{
		BaseHomeMean: cfg.BaseHomeMean,
		BaseAwayMean: cfg.BaseAwayMean,
		MaxMean:      cfg.MaxGoalMean,
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("engine params: %w", err)
	}

	rosterCache := usecase.NewRosterCache()
	ratingSvc := usecase.NewRatingService(rosterCache)
	matchSvc := usecase.NewMatchService(ratingSvc, params)
	standingSvc := usecase.NewStandingService()

	seasonSvc := usecase.NewSeasonService(
		matchSvc,
		standingSvc,
		rosterCache,
		repos.teams,
		repos.players,
		repos.fixtures,
		repos.history,
		logger,
		cfg.SimulationWorkers,
		cfg.SimulationSeed,
	)
	predictionSvc := usecase.NewPredictionService(ratingSvc, params, cfg.PredictionRuns, cfg.PredictionWorkers)
	playerGen := usecase.NewPlayerGenService(idgen.NewRandomGenerator())
	leagueSvc := usecase.NewLeagueService(repos.teams, repos.players, playerGen, logger)

	handler := httpapi.NewHandler(leagueSvc, seasonSvc, predictionSvc, logger, cfg.SimulationSeed)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return &App{Server: server, Seasons: seasonSvc, League: leagueSvc}, nil
}

// NewHTTPServer builds the service and returns only the HTTP server.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	built, err := Build(cfg, logger)
	if err != nil {
		return nil, err
	}
	return built.Server, nil
}
