package ai

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"hexwar/game"
)

// Difficulty scales the AI seat's income. It never touches combat.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

var multipliers = map[Difficulty]float64{
	Easy:   1,
	Normal: 2,
	Hard:   3,
}

// Multiplier returns the income multiplier of the preset, 1 if unknown.
func (d Difficulty) Multiplier() float64 {
	if m, ok := multipliers[d]; ok {
		return m
	}
	return 1
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := multipliers[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// Ledger is the balance book the planner buys and builds with.
type Ledger interface {
	CanAfford(player game.Player, cost int) bool
	Spend(player game.Player, cost int) bool
}

// CombatEntry is an attack the AI decided on but did not apply, with the
// combatants as they were when the decision was made.
type CombatEntry struct {
	Preview  game.Preview
	Attacker game.SavedUnit
	Defender game.SavedUnit
}

// Planner drives one seat with fixed heuristics. It holds no reference to the
// game state between turns.
type Planner struct {
	player     *game.Player
	multiplier float64
}

func NewPlanner() *Planner {
	return &Planner{multiplier: 1}
}

// Configure sets the controlled seat, or disables the AI when player is nil.
// Multipliers below 1 are raised to 1.
func (p *Planner) Configure(player *game.Player, multiplier float64) {
	if player != nil {
		seat := *player
		p.player = &seat
	} else {
		p.player = nil
	}
	p.multiplier = max(1, multiplier)
}

// Player returns the controlled seat.
func (p *Planner) Player() (game.Player, bool) {
	if p.player == nil {
		return game.NoPlayer, false
	}
	return *p.player, true
}

func (p *Planner) ShouldRun(s *game.State) bool {
	return p.player != nil && s.CurrentPlayer == *p.player
}

// IncomeMultiplier is the difficulty multiplier for the AI seat and 1 for anyone else.
func (p *Planner) IncomeMultiplier(player game.Player) float64 {
	if p.player == nil || *p.player != player {
		return 1
	}
	return p.multiplier
}

// RunTurn plays the current player's turn: buy, then act with every unit in
// order. Attacks are returned as previews for the caller to apply.
func (p *Planner) RunTurn(s *game.State, ledger Ledger, dice game.Dice) []CombatEntry {
	if !p.ShouldRun(s) {
		return nil
	}
	me := s.CurrentPlayer

	p.purchase(s, me, ledger)

	t := newTurn(s, me)
	var entries []CombatEntry
	for _, u := range t.actingOrder() {
		if u.Acted {
			continue
		}
		switch u.Type {
		case game.Medic:
			if !t.heal(u) {
				t.moveToInjured(u)
			}
			continue
		case game.Engineer:
			if !t.buildRoad(u, ledger) {
				t.moveEngineer(u)
			}
			continue
		}

		if u.HP < retreatHP && t.retreat(u) {
			continue
		}
		if entry, ok := t.attack(u, dice); ok {
			entries = append(entries, entry)
			continue
		}
		t.move(u)
	}

	log.Debug().
		Int("player", int(me)).
		Int("turn", s.Turn).
		Int("attacks", len(entries)).
		Int("balance", s.Balances[me]).
		Msg("ai turn planned")
	return entries
}
