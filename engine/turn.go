package engine

import (
	"github.com/rs/zerolog/log"

	"hexwar/ai"
	"hexwar/game"
)

// EndTurn finishes the current player's turn. If the next seat belongs to the
// AI, its whole turn is played before returning, so control always comes back
// to a human. The AI's attacks are returned unapplied; pass each one to
// ApplyCombat to resolve it. Attacks left over from the previous call are
// dropped.
func (c *Core) EndTurn() []ai.CombatEntry {
	if c.state.GameOver {
		return nil
	}
	clear(c.pending)
	return c.endTurn(true)
}

func (c *Core) endTurn(allowAI bool) []ai.CombatEntry {
	s := c.state
	player := s.CurrentPlayer

	for _, u := range s.Units.Owned(player) {
		u.ResetForNewTurn()
	}
	c.applyIncome(player)
	s.Turn++
	s.CurrentPlayer = player.Opponent()
	s.ClearSelection(true)

	log.Info().Msgf("turn %d: player %d to move", s.Turn, s.CurrentPlayer)

	if !allowAI || !c.planner.ShouldRun(s) {
		return nil
	}
	entries := c.planner.RunTurn(s, c, c.dice)
	for _, e := range entries {
		c.pending[e.Preview.AttackerID] = e.Preview
		// Attackers waiting on the host do not get the idle heal.
		if u := s.Units.Get(e.Preview.AttackerID); u != nil {
			u.Acted = true
		}
	}
	c.endTurn(false)
	return entries
}

// ApplyCombat resolves a preview and returns how many units died. Previews
// from SelectHex act for the current player. Previews from the last EndTurn
// act for the AI seat and can each be applied once. Stale or illegal
// previews are ignored.
func (c *Core) ApplyCombat(p game.Preview) int {
	s := c.state
	if s.GameOver {
		return 0
	}

	actor := s.CurrentPlayer
	pending, deferred := c.pending[p.AttackerID]
	deferred = deferred && pending == p
	if deferred {
		actor = p.AttackerOwner
	}

	dead, ok := game.ApplyCombat(s, p, actor)
	if !ok {
		log.Debug().Int("attacker", int(p.AttackerID)).Int("defender", int(p.DefenderID)).Msg("combat rejected")
		return 0
	}
	if deferred {
		delete(c.pending, p.AttackerID)
		// The AI turn already ended and reset its units.
		if a := s.Units.Get(p.AttackerID); a != nil {
			a.Acted = false
		}
	}

	c.evaluateGameOver(p.AttackerOwner)
	s.ClearSelection(false)
	return len(dead)
}

// PendingAttacks returns the AI attacks still waiting to be applied.
func (c *Core) PendingAttacks() int {
	return len(c.pending)
}
