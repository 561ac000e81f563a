package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/vegasforbots/internal/fileutil"
	"github.com/lox/vegasforbots/internal/simulator"
	"github.com/lox/vegasforbots/internal/statistics"
)

type SimulateCmd struct {
	Games      int    `help:"Number of games to simulate (overrides config)"`
	Players    int    `help:"Number of seated players (overrides config)"`
	Seed       *int64 `help:"RNG seed, 0 for time-based (overrides config)"`
	Workers    int    `help:"Number of parallel workers (overrides config)"`
	Config     string `default:"vegas.hcl" type:"path" help:"Path to HCL config file"`
	WriteStats string `type:"path" help:"Write aggregate stats as JSON to a file"`
	Verbose    bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := simulator.LoadConfig(c.Config)
	if err != nil {
		return err
	}

	// Flags override the config file
	if c.Games > 0 {
		cfg.Games = c.Games
	}
	if c.Players > 0 {
		cfg.Players = c.Players
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	ctx := setupSignalHandler(logger)

	sim := simulator.New(*cfg, logger)
	stats, elapsed, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(simulator.RenderReport(stats, *cfg, elapsed))

	if c.WriteStats != "" {
		if err := writeStatsFile(c.WriteStats, stats, *cfg, elapsed); err != nil {
			return fmt.Errorf("failed to write stats file: %w", err)
		}
		logger.Info("wrote stats file", "path", c.WriteStats)
	}
	return nil
}

// statsFile is the JSON document produced by --write-stats.
type statsFile struct {
	Games          int         `json:"games"`
	Players        int         `json:"players"`
	Seed           int64       `json:"seed"`
	ElapsedSeconds float64     `json:"elapsed_seconds"`
	Draws          int         `json:"draws"`
	Aborted        int         `json:"aborted"`
	Margin         marginStats `json:"margin"`
	Seats          []seatStats `json:"seats"`
	TotalBillsPaid int         `json:"total_bills_paid"`
	TotalMoves     int         `json:"total_moves"`
	MaxScore       int         `json:"max_score"`
}

type marginStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	CILow  float64 `json:"ci95_low"`
	CIHigh float64 `json:"ci95_high"`
}

type seatStats struct {
	Seat     int     `json:"seat"`
	Name     string  `json:"name"`
	Games    int     `json:"games"`
	Wins     int     `json:"wins"`
	Draws    int     `json:"draws"`
	MeanCash float64 `json:"mean_cash"`
	WinRate  float64 `json:"win_rate"`
}

func writeStatsFile(path string, stats *statistics.Statistics, cfg simulator.Config, elapsed time.Duration) error {
	low, high := stats.ConfidenceInterval95()
	doc := statsFile{
		Games:          stats.Games,
		Players:        cfg.Players,
		Seed:           cfg.Seed,
		ElapsedSeconds: elapsed.Seconds(),
		Draws:          stats.Draws,
		Aborted:        stats.Aborted,
		Margin: marginStats{
			Mean:   stats.Mean(),
			Median: stats.Median(),
			StdDev: stats.StdDev(),
			CILow:  low,
			CIHigh: high,
		},
		TotalBillsPaid: stats.TotalBillsPaid,
		TotalMoves:     stats.TotalMoves,
		MaxScore:       stats.MaxScore,
	}

	for seat := 0; seat < cfg.Players; seat++ {
		name := fmt.Sprintf("Player %d", seat+1)
		if seat < len(cfg.Seats) && cfg.Seats[seat].Name != "" {
			name = cfg.Seats[seat].Name
		}
		doc.Seats = append(doc.Seats, seatStats{
			Seat:     seat,
			Name:     name,
			Games:    stats.Seats[seat].Games,
			Wins:     stats.Seats[seat].Wins,
			Draws:    stats.Seats[seat].Draws,
			MeanCash: stats.SeatMean(seat),
			WinRate:  stats.SeatWinRate(seat),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

// setupSignalHandler creates a context that is cancelled on interrupt signals
func setupSignalHandler(logger *log.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	return ctx
}
