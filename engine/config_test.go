package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hexwar/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexwar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
map:
  width: 12
  height: 9
seed: 42
ai:
  difficulty: hard
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, MapConfig{Width: 12, Height: 9}, cfg.Map)
		require.Equal(t, int64(42), cfg.Seed)
		require.Equal(t, 50, cfg.StartingBalance)
		require.True(t, cfg.AI.Enabled)
		require.Equal(t, 1, cfg.AI.Player)
		require.Equal(t, "hard", cfg.AI.Difficulty)
		require.Equal(t, game.DefaultAnimationSpeed, cfg.AnimationSpeed)
	})

	t.Run("snake case keys", func(t *testing.T) {
		path := writeConfig(t, "starting_balance: 300\nanimation_speed: 4.5\nai:\n  enabled: false\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 300, cfg.StartingBalance)
		require.Equal(t, 4.5, cfg.AnimationSpeed)
		require.False(t, cfg.AI.Enabled)
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "ai:\n  difficulty: brutal\n"))
		require.ErrorContains(t, err, "brutal")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "map: [1, 2"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"narrow map", func(c *Config) { c.Map.Width = 2 }},
		{"empty map", func(c *Config) { c.Map.Height = 0 }},
		{"negative balance", func(c *Config) { c.StartingBalance = -1 }},
		{"still animation", func(c *Config) { c.AnimationSpeed = 0 }},
		{"third seat", func(c *Config) { c.AI.Player = 2 }},
		{"unknown difficulty", func(c *Config) { c.AI.Difficulty = "brutal" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	t.Run("disabled AI is not checked", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AI = AIConfig{Enabled: false, Player: 7, Difficulty: "brutal"}
		require.NoError(t, cfg.Validate())
	})
}

func TestConfigAISeat(t *testing.T) {
	cfg := DefaultConfig()
	seat, multiplier := cfg.aiSeat()
	require.NotNil(t, seat)
	require.Equal(t, game.Player(1), *seat)
	require.Equal(t, 2.0, multiplier)

	cfg.AI.Difficulty = "Hard"
	_, multiplier = cfg.aiSeat()
	require.Equal(t, 3.0, multiplier)

	cfg.AI.Enabled = false
	seat, multiplier = cfg.aiSeat()
	require.Nil(t, seat)
	require.Equal(t, 1.0, multiplier)
}
