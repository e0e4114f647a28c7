package engine

import (
	"hexwar/experiments/metrics"
	"hexwar/game"
	"hexwar/meta"
)

const MaxTurns = meta.MAX_TURNS

type Engine interface {
	// Run plays until there's a winner or maxTurns turns have passed
	Run(maxTurns int) (winner game.Player, matchMetric metrics.MatchMetric, turnMetrics []metrics.TurnMetric)
}
