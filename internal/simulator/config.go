package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/vegasforbots/vegas"
)

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Players  int
	Seed     int64
	Workers  int
	LogLevel string
	Seats    []SeatConfig
}

// SeatConfig assigns a name and strategy to one seat
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

// fileConfig is the HCL shape of a simulation config file:
//
//	simulation {
//	  games   = 10000
//	  players = 4
//	  seed    = 42
//	}
//
//	seat "alice" { strategy = "greedy" }
//	seat "bob"   { strategy = "random" }
type fileConfig struct {
	Simulation *simulationSettings `hcl:"simulation,block"`
	Seats      []SeatConfig        `hcl:"seat,block"`
}

// simulationSettings contains simulation-level configuration
type simulationSettings struct {
	Games    int    `hcl:"games,optional"`
	Players  int    `hcl:"players,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Workers  int    `hcl:"workers,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// DefaultConfig returns the default simulation configuration
func DefaultConfig() *Config {
	return &Config{
		Games:    1000,
		Players:  4,
		Seed:     1,
		Workers:  1,
		LogLevel: "info",
	}
}

// LoadConfig loads simulation configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if fc.Simulation != nil {
		if fc.Simulation.Games != 0 {
			config.Games = fc.Simulation.Games
		}
		if fc.Simulation.Players != 0 {
			config.Players = fc.Simulation.Players
		}
		if fc.Simulation.Seed != 0 {
			config.Seed = fc.Simulation.Seed
		}
		if fc.Simulation.Workers != 0 {
			config.Workers = fc.Simulation.Workers
		}
		if fc.Simulation.LogLevel != "" {
			config.LogLevel = fc.Simulation.LogLevel
		}
	}
	config.Seats = fc.Seats

	// Seats without a strategy play randomly
	for i := range config.Seats {
		if config.Seats[i].Strategy == "" {
			config.Seats[i].Strategy = "random"
		}
	}

	return config, nil
}

// Validate validates the simulation configuration
func (c *Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Players < vegas.MinPlayers || c.Players > vegas.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d",
			vegas.MinPlayers, vegas.MaxPlayers, c.Players)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if len(c.Seats) > 0 && len(c.Seats) != c.Players {
		return fmt.Errorf("%d seats configured for %d players", len(c.Seats), c.Players)
	}

	validStrategies := map[string]bool{
		"random": true,
		"greedy": true,
		"first":  true,
	}
	for _, seat := range c.Seats {
		if !validStrategies[seat.Strategy] {
			return fmt.Errorf("seat %s: invalid strategy %s", seat.Name, seat.Strategy)
		}
	}
	return nil
}

// SeatNames returns the configured seat names, nil when seats are unnamed.
func (c *Config) SeatNames() []string {
	if len(c.Seats) == 0 {
		return nil
	}
	names := make([]string, len(c.Seats))
	for i, seat := range c.Seats {
		names[i] = seat.Name
	}
	return names
}

// StrategyFor returns the strategy configured for a seat.
func (c *Config) StrategyFor(seat int) string {
	if seat < len(c.Seats) {
		return c.Seats[seat].Strategy
	}
	return "random"
}
