package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hexwar/engine"
	"hexwar/experiments"
	"hexwar/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	turns := flag.Int("turns", engine.MaxTurns, "Maximum number of turns to play")
	seed := flag.Int64("seed", 0, "Random seed, overrides the config when non-zero")
	difficulty := flag.String("difficulty", "", "AI difficulty (easy, normal, hard), overrides the config")
	loadPath := flag.String("load", "", "Resume from a JSON save")
	savePath := flag.String("save", "", "Write the final state as a JSON save")
	games := flag.Int("experiment", 0, "Run the difficulty experiment with this many games per difficulty")
	outDir := flag.String("out", "experiments", "Output directory for experiment results")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = engine.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *difficulty != "" {
		cfg.AI.Enabled = true
		cfg.AI.Difficulty = *difficulty
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if *games > 0 {
		if err := experiments.RunDifficultyExperiment(cfg, *games, *turns, *outDir); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	core, err := newCore(cfg, *loadPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	winner, matchMetric, _ := engine.NewMatch(core, false).Run(*turns)
	log.Info().Msgf("match finished after %d turns in %s, winner: %d", matchMetric.TotalTurns, matchMetric.Duration, winner)

	if *savePath != "" {
		data, err := core.SaveJSON()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to encode save")
		}
		if err := os.WriteFile(*savePath, data, 0644); err != nil {
			log.Fatal().Err(err).Msg("failed to write save")
		}
		log.Info().Msgf("saved game to %s", *savePath)
	}
}

func newCore(cfg engine.Config, loadPath string) (*engine.Core, error) {
	if loadPath == "" {
		return engine.NewCore(cfg)
	}
	data, err := os.ReadFile(loadPath)
	if err != nil {
		return nil, err
	}
	saved, err := game.ParseSave(data)
	if err != nil {
		return nil, err
	}
	return engine.NewCoreFromState(cfg, saved)
}
