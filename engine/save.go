package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"hexwar/game"
)

func (c *Core) Serialize() game.SavedState {
	return game.Serialize(c.state)
}

// Load replaces the match with a saved one. The save is fully validated
// first; on error the current match is kept.
func (c *Core) Load(saved game.SavedState) error {
	s, err := game.Deserialize(saved)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	c.state = s
	clear(c.pending)
	log.Info().Msgf("loaded turn %d with %d units", s.Turn, s.Units.Len())
	return nil
}

func (c *Core) SaveJSON() ([]byte, error) {
	return game.MarshalState(c.state)
}

func (c *Core) LoadJSON(data []byte) error {
	s, err := game.UnmarshalState(data)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	c.state = s
	clear(c.pending)
	return nil
}
