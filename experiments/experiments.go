package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"hexwar/ai"
	"hexwar/engine"
	"hexwar/experiments/metrics"
	"hexwar/game"
)

var difficultyConfigs = []metrics.MatchConfig{
	{ID: 1, Difficulty: string(ai.Easy)},
	{ID: 2, Difficulty: string(ai.Normal)},
	{ID: 3, Difficulty: string(ai.Hard)},
}

// RunDifficultyExperiment plays the autopilot against the AI seat at every
// difficulty, numGames games each with consecutive seeds, and writes the
// results under outDir.
func RunDifficultyExperiment(base engine.Config, numGames, maxTurns int, outDir string) error {
	configs := make([]metrics.MatchConfig, len(difficultyConfigs))
	for i, config := range difficultyConfigs {
		config.Width = base.Map.Width
		config.Height = base.Map.Height
		configs[i] = config
	}
	return runExperiment("difficulty", base, configs, numGames, maxTurns, outDir)
}

func runExperiment(name string, base engine.Config, configs []metrics.MatchConfig, numGames, maxTurns int, outDir string) error {
	count := 0
	matchRecords := []metrics.MatchRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(configs), config)

		for i := 0; i < numGames; i++ {
			cfg := base
			cfg.Seed = base.Seed + int64(i)
			cfg.AI.Enabled = true
			cfg.AI.Difficulty = config.Difficulty

			winner, matchMetric, turnMetrics, err := runGame(cfg, maxTurns)
			if err != nil {
				return fmt.Errorf("config %d game %d: %w", config.ID, i+1, err)
			}
			count++
			matchRecords = append(matchRecords, metrics.MatchRecord{
				ID:          count,
				Config:      config.ID,
				MatchMetric: matchMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Match:      count,
					TurnMetric: tm,
				})
			}

			log.Info().Msgf("completed config %d game %d of %d with winner: %d", config.ID, i+1, numGames, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return err
	}
	if err := writer.WriteMatchConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteMatchRecords(matchRecords); err != nil {
		return err
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

// runGame plays a single headless match and returns the winner.
func runGame(cfg engine.Config, maxTurns int) (game.Player, metrics.MatchMetric, []metrics.TurnMetric, error) {
	core, err := engine.NewCore(cfg)
	if err != nil {
		return game.NoPlayer, metrics.MatchMetric{}, nil, err
	}
	winner, matchMetric, turnMetrics := engine.NewMatch(core, true).Run(maxTurns)
	return winner, matchMetric, turnMetrics, nil
}
