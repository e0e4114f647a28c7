package engine

import (
	"github.com/rs/zerolog/log"

	"hexwar/game"
	"hexwar/meta"
)

// Balance returns p's funds, 0 for an unknown seat.
func (c *Core) Balance(p game.Player) int {
	if !p.Valid() {
		return 0
	}
	return c.state.Balances[p]
}

func (c *Core) AddBalance(p game.Player, amount int) {
	if !p.Valid() {
		return
	}
	c.state.Balances[p] += amount
}

func (c *Core) CanAfford(p game.Player, cost int) bool {
	return p.Valid() && c.Balance(p) >= cost
}

// Spend deducts cost if p can afford it.
func (c *Core) Spend(p game.Player, cost int) bool {
	if !c.CanAfford(p, cost) {
		return false
	}
	c.state.Balances[p] -= cost
	return true
}

// Income is what p earns at the end of its turn: a base amount plus every
// City and Industry its units stand on, scaled for the AI seat. Balances are
// whole numbers, so the scaled total is truncated once.
func (c *Core) Income(p game.Player) int {
	income := meta.BASE_INCOME
	for _, u := range c.state.Units.Owned(p) {
		t := c.state.Tile(u.Pos)
		if t == nil {
			continue
		}
		switch t.Field {
		case game.City:
			income += meta.CITY_INCOME
		case game.Industry:
			income += meta.INDUSTRY_INCOME
		}
	}
	return int(float64(income) * c.planner.IncomeMultiplier(p))
}

func (c *Core) applyIncome(p game.Player) {
	income := c.Income(p)
	c.AddBalance(p, income)
	log.Debug().Int("player", int(p)).Int("income", income).Int("balance", c.Balance(p)).Msg("income")
}
