package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/riskibarqy/league-simulator/internal/app"
	"github.com/riskibarqy/league-simulator/internal/config"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

// simulate runs whole seasons from the command line: generates squads
// when asked, plays every gameweek, prints the final table and re-rates
// teams between seasons.
func main() {
	seasons := flag.Int("seasons", 1, "number of seasons to play")
	squads := flag.Bool("squads", false, "generate a squad for every team before playing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	if cfg.LogFormat == "" || cfg.LogFormat == "json" {
		cfg.LogFormat = "console"
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	built, err := app.Build(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if *squads {
		rng := rand.New(rand.NewSource(cfg.SimulationSeed))
		generated, err := built.League.GenerateSquads(ctx, rng)
		if err != nil {
			logger.Error("generate squads", "error", err)
			os.Exit(1)
		}
		logger.Info("squads ready", "generated", generated)
	}

	for i := 0; i < *seasons; i++ {
		if err := built.Seasons.Start(ctx); err != nil {
			logger.Error("start season", "error", err)
			os.Exit(1)
		}
		if err := built.Seasons.RunSeason(ctx); err != nil {
			logger.Error("run season", "error", err)
			os.Exit(1)
		}

		printTable(built)

		if err := built.Seasons.Rerate(ctx); err != nil {
			logger.Error("re-rate teams", "error", err)
			os.Exit(1)
		}
	}
}

func printTable(built *app.App) {
	fmt.Printf("\nSeason %d final table\n", built.Seasons.SeasonID())
	fmt.Printf("%-4s %-26s %3s %3s %3s %3s %4s %4s %4s %6s\n",
		"Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts")
	for _, row := range built.Seasons.Table() {
		fmt.Printf("%-4d %-26s %3d %3d %3d %3d %4d %4d %4d %6d\n",
			row.Position, row.TeamName, row.Played, row.Wins, row.Draws, row.Losses,
			row.GoalsFor, row.GoalsAgainst, row.GoalDiff, row.Points)
	}
}
