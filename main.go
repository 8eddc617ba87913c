package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rpsb/communication"
	"rpsb/config"
	"rpsb/engine"
	"rpsb/experiments"
	"rpsb/game"
	"rpsb/opponent"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	player := flag.String("player", cfg.Player, "Player's name")
	difficulty := flag.String("difficulty", cfg.Difficulty, "Opponent difficulty: easy, medium, hard or expert")
	seed := flag.Uint64("seed", cfg.Seed, "Seed for the opponent's randomness, 0 for a random seed")
	simulate := flag.Bool("simulate", false, "Run the difficulty experiment instead of an interactive game")
	matches := flag.Int("matches", cfg.Matches, "Number of simulated matches per matchup")
	results := flag.String("results", cfg.ResultsDir, "Directory for experiment results")
	flag.Parse()

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *simulate {
		runExperiment(*matches, *seed, *results)
		return
	}

	console := communication.NewConsole(os.Stdin, os.Stdout)
	newOpponent := func(profile game.Profile) *opponent.Opponent {
		if *seed != 0 {
			return opponent.New(profile, opponent.WithSeed(*seed))
		}
		return opponent.New(profile)
	}
	session := engine.NewSession(console, console, newOpponent,
		engine.WithPlayer(*player), engine.WithDifficulty(*difficulty))

	if _, err := session.Run(); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal().Err(err).Msg("session failed")
	}
	console.ShowNotice("Thanks for playing! Goodbye!")
}

func runExperiment(matches int, seed uint64, results string) {
	e := experiments.New(experiments.WithMatches(matches), experiments.WithSeed(seed))
	stats, dir, err := e.RunAndStore(results, "difficulty")
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	fmt.Printf("%-10s %-16s %8s %8s %8s %8s %10s\n", "difficulty", "player", "matches", "wins_a", "wins_b", "draws", "win_rate_b")
	for _, s := range stats {
		fmt.Printf("%-10s %-16s %8d %8d %8d %8d %10.3f\n", s.Difficulty, s.Player, s.Matches, s.WinsA, s.WinsB, s.Draws, s.WinRateB())
	}
	fmt.Printf("Stored results in %s (seed %d)\n", dir, e.Seed())
}
