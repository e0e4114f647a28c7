package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexwar/ai"
	"hexwar/game"
	"hexwar/hex"
)

type Option func(c *Core)

// WithDice replaces the combat dice, mostly for tests.
func WithDice(dice game.Dice) Option {
	return func(c *Core) {
		if dice != nil {
			c.dice = dice
		}
	}
}

// WithRand replaces the random source used for map generation and placement.
func WithRand(rng *rand.Rand) Option {
	return func(c *Core) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// Core owns the game state and is the only thing that mutates it. It is not
// safe for concurrent use; every call runs to completion before the next.
type Core struct {
	cfg     Config
	rng     *rand.Rand
	dice    game.Dice
	state   *game.State
	planner *ai.Planner

	// AI attacks handed out by the last EndTurn, keyed by attacker.
	pending map[game.UnitID]game.Preview
}

func newCore(cfg Config, opts []Option) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Core{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(uint64(cfg.Seed))),
		planner: ai.NewPlanner(),
		pending: make(map[game.UnitID]game.Preview),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.dice == nil {
		c.dice = c.rng
	}
	c.planner.Configure(cfg.aiSeat())
	return c, nil
}

// newGameAttempts bounds how many maps NewCore generates before giving up on
// start placement.
const newGameAttempts = 10

// NewCore generates a map and places both start clusters, generating a new
// map when placement fails.
func NewCore(cfg Config, opts ...Option) (*Core, error) {
	c, err := newCore(cfg, opts)
	if err != nil {
		return nil, err
	}
	for attempt := 1; ; attempt++ {
		err = c.NewGame()
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, ErrPlacement) || attempt == newGameAttempts {
			return nil, err
		}
		log.Warn().Err(err).Msgf("regenerating map (attempt %d)", attempt+1)
	}
}

// NewCoreFromState resumes a saved match without generating anything.
func NewCoreFromState(cfg Config, saved game.SavedState, opts ...Option) (*Core, error) {
	c, err := newCore(cfg, opts)
	if err != nil {
		return nil, err
	}
	if err := c.Load(saved); err != nil {
		return nil, err
	}
	return c, nil
}

// NewGame replaces the current match with a fresh map. On failure the
// previous match is left untouched.
func (c *Core) NewGame() error {
	board, err := game.GenerateMap(c.cfg.Map.Width, c.cfg.Map.Height, c.rng)
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}
	s := game.NewState(board, c.cfg.StartingBalance)
	if err := placeStartUnits(s, c.rng); err != nil {
		return err
	}
	c.state = s
	clear(c.pending)
	log.Info().Msgf("new %dx%d game with %d units", board.Width, board.Height, s.Units.Len())
	return nil
}

// ConfigureAI changes the AI seat, or disables it when player is nil. The
// multiplier may be fractional; see Income for rounding.
func (c *Core) ConfigureAI(player *game.Player, multiplier float64) {
	c.planner.Configure(player, multiplier)
}

func (c *Core) Config() Config {
	return c.cfg
}

// MapCenter returns the middle tile of the board, or the first tile if the
// grid has a hole there.
func (c *Core) MapCenter() (hex.Axial, bool) {
	t := c.state.Board.Center()
	if t == nil {
		return hex.Axial{}, false
	}
	return t.Pos(), true
}

// TileAtColRow looks a tile up by its grid indices.
func (c *Core) TileAtColRow(col, row int) (game.Tile, bool) {
	t := c.state.Board.TileAtColRow(col, row)
	if t == nil {
		return game.Tile{}, false
	}
	return *t, true
}

func (c *Core) HasActiveAnimations() bool {
	return game.HasActiveAnimations(c.state.Units.All())
}

func (c *Core) AdvanceAnimations(dt float64) bool {
	return game.AdvanceAnimations(c.state.Units.All(), dt, c.cfg.AnimationSpeed)
}

func (c *Core) FinishAnimations() bool {
	return game.FinishAnimations(c.state.Units.All())
}

// evaluateGameOver ends the match when a side has lost its last HQ. If both
// are gone the attacker wins.
func (c *Core) evaluateGameOver(attacker game.Player) {
	s := c.state
	alive0 := len(s.Units.Headquarters(0)) > 0
	alive1 := len(s.Units.Headquarters(1)) > 0
	if alive0 && alive1 {
		return
	}
	s.GameOver = true
	switch {
	case alive0:
		s.Winner = 0
	case alive1:
		s.Winner = 1
	default:
		s.Winner = attacker
	}
	log.Info().Msgf("game over on turn %d, player %d wins", s.Turn, s.Winner)
}
