package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"hexwar/ai"
	"hexwar/experiments/metrics"
	"hexwar/game"
)

// Match plays a core headlessly. Seats not driven by the core's AI are
// played by an autopilot planner using the same heuristics.
type Match struct {
	Core      *Core
	autopilot *ai.Planner
	metrics   metrics.Collector
}

var _ Engine = (*Match)(nil)

func NewMatch(core *Core, collect bool) *Match {
	m := &Match{
		Core:      core,
		autopilot: ai.NewPlanner(),
		metrics:   metrics.NewDummyCollector(),
	}
	if collect {
		m.metrics = metrics.NewCollector()
	}
	return m
}

// Run executes the game loop until a winner is found or maxTurns end-of-turns
// have been played.
func (m *Match) Run(maxTurns int) (game.Player, metrics.MatchMetric, []metrics.TurnMetric) {
	c := m.Core
	start := time.Now()
	var turnMetrics []metrics.TurnMetric

	log.Info().Msgf("player %d is starting", c.state.CurrentPlayer)

	turns := 0
	for !c.state.GameOver && turns < maxTurns {
		seat := c.state.CurrentPlayer
		m.metrics.Start(c.state.Turn, int(seat))
		m.autopilot.Configure(&seat, 1)
		for _, entry := range m.autopilot.RunTurn(c.state, c, c.dice) {
			m.metrics.AddAttack(c.ApplyCombat(entry.Preview))
			if c.state.GameOver {
				break
			}
		}
		turnMetrics = append(turnMetrics, m.metrics.Complete(m.snapshot(seat)))
		if c.state.GameOver {
			break
		}

		aiSeat, aiTurn := c.planner.Player()
		aiTurn = aiTurn && aiSeat == seat.Opponent()
		turnBefore := c.state.Turn
		entries := c.EndTurn()
		turns++

		if aiTurn {
			m.metrics.Start(turnBefore+1, int(aiSeat))
			for _, entry := range entries {
				m.metrics.AddAttack(c.ApplyCombat(entry.Preview))
				if c.state.GameOver {
					break
				}
			}
			turnMetrics = append(turnMetrics, m.metrics.Complete(m.snapshot(aiSeat)))
			turns++
		}
		c.FinishAnimations()
	}

	end := time.Now()
	winner := game.NoPlayer
	if c.state.GameOver {
		winner = c.state.Winner
		log.Info().Msgf("game ended on turn %d with winner: player %d", c.state.Turn, winner)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", turns)
	}

	difficulty := ""
	if c.cfg.AI.Enabled {
		difficulty = c.cfg.AI.Difficulty
	}
	return winner, metrics.MatchMetric{
		Seed:       c.cfg.Seed,
		Difficulty: difficulty,
		Winner:     int(winner),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalTurns: turns,
	}, turnMetrics
}

func (m *Match) snapshot(p game.Player) metrics.Snapshot {
	s := m.Core.state
	return metrics.Snapshot{
		Balance:  s.Balances[p],
		Units:    len(s.Units.Owned(p)),
		Holdings: s.Holdings(p),
	}
}
