package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 1000, config.Games)
	assert.Equal(t, 4, config.Players)
	assert.Equal(t, int64(1), config.Seed)
	assert.Equal(t, 1, config.Workers)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.Seats)
	require.NoError(t, config.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.hcl")
	content := `
simulation {
  games   = 500
  players = 3
  seed    = 99
  workers = 8
}

seat "alice" {
  strategy = "greedy"
}

seat "bob" {
  strategy = "first"
}

seat "carol" {}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, config.Games)
	assert.Equal(t, 3, config.Players)
	assert.Equal(t, int64(99), config.Seed)
	assert.Equal(t, 8, config.Workers)
	assert.Equal(t, "info", config.LogLevel, "unset fields keep their defaults")

	require.Len(t, config.Seats, 3)
	assert.Equal(t, SeatConfig{Name: "alice", Strategy: "greedy"}, config.Seats[0])
	assert.Equal(t, SeatConfig{Name: "bob", Strategy: "first"}, config.Seats[1])
	assert.Equal(t, "random", config.Seats[2].Strategy, "unset strategy falls back to random")

	require.NoError(t, config.Validate())
	assert.Equal(t, []string{"alice", "bob", "carol"}, config.SeatNames())
	assert.Equal(t, "greedy", config.StrategyFor(0))
	assert.Equal(t, "random", config.StrategyFor(5), "unconfigured seats play randomly")
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.hcl")
	content := `
simulation {
  games = 42
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 42, config.Games)
	assert.Equal(t, 4, config.Players)
	assert.Equal(t, 1, config.Workers)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte("simulation {"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero games", func(c *Config) { c.Games = 0 }, "games must be positive"},
		{"one player", func(c *Config) { c.Players = 1 }, "players must be between"},
		{"six players", func(c *Config) { c.Players = 6 }, "players must be between"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers must be positive"},
		{"seat mismatch", func(c *Config) {
			c.Seats = []SeatConfig{{Name: "solo", Strategy: "random"}}
		}, "seats configured for"},
		{"bad strategy", func(c *Config) {
			c.Players = 2
			c.Seats = []SeatConfig{
				{Name: "a", Strategy: "random"},
				{Name: "b", Strategy: "psychic"},
			}
		}, "invalid strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
