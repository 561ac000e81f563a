package simulator

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/vegasforbots/internal/gameid"
	"github.com/lox/vegasforbots/internal/randutil"
	"github.com/lox/vegasforbots/internal/statistics"
	"github.com/lox/vegasforbots/vegas"
)

// progressInterval is how many completed games pass between progress logs.
const progressInterval = 1000

// Simulator runs batches of bot-vs-bot games and aggregates the outcomes.
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration.
func New(config Config, logger *log.Logger) *Simulator {
	return NewWithClock(config, logger, quartz.NewReal())
}

// NewWithClock creates a simulator with an injected clock for testing.
func NewWithClock(config Config, logger *log.Logger, clock quartz.Clock) *Simulator {
	return &Simulator{
		config: config,
		logger: logger,
		clock:  clock,
	}
}

// Run executes the configured number of games and returns the aggregated
// statistics and the wall time spent. Games are split across workers; each
// game gets its own seed derived from the master seed, so results are
// reproducible regardless of worker count or completion order.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, time.Duration, error) {
	if err := s.config.Validate(); err != nil {
		return nil, 0, err
	}

	start := s.clock.Now()
	games := s.config.Games
	workers := s.config.Workers
	if workers > games {
		workers = games
	}

	// Derive per-game seeds up front so game i is the same game no matter
	// which worker runs it
	master := randutil.New(s.config.Seed)
	seeds := make([]int64, games)
	for i := range seeds {
		seeds[i] = master.Int64()
	}

	s.logger.Info("starting simulation",
		"games", games,
		"players", s.config.Players,
		"seed", s.config.Seed,
		"workers", workers)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan statistics.GameResult, workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < games; i += workers {
				result, err := s.playGame(seeds[i])
				if err != nil {
					return fmt.Errorf("game %d (seed %d): %w", i+1, seeds[i], err)
				}
				select {
				case results <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		defer close(results)
		g.Wait()
	}()

	stats := &statistics.Statistics{}
	for result := range results {
		stats.Add(result)
		if stats.Games%progressInterval == 0 {
			s.logger.Info("simulation progress",
				"games", stats.Games,
				"total", games,
				"elapsed", s.clock.Since(start))
		}
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := stats.Validate(); err != nil {
		return nil, 0, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.clock.Since(start)
	s.logger.Info("simulation complete",
		"games", stats.Games,
		"draws", stats.Draws,
		"aborted", stats.Aborted,
		"elapsed", elapsed)
	return stats, elapsed, nil
}

// playGame drives one full game: agents take turns in seating order from
// the round's opening seat until all dice are placed, then the round is
// resolved. Conservation is validated at every round boundary.
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	rng := randutil.New(seed)

	agents, err := s.buildAgents(rng)
	if err != nil {
		return statistics.GameResult{}, err
	}

	bus := vegas.NewEventBus()
	bus.Subscribe(&eventLogger{logger: s.logger})

	id := gameid.GenerateWithRandSource(rng)
	game, err := vegas.NewGame(rng, s.config.Players,
		vegas.WithGameID(id),
		vegas.WithEventBus(bus),
		vegas.WithPlayerNames(s.config.SeatNames()))
	if err != nil {
		return statistics.GameResult{}, err
	}

	result := statistics.GameResult{GameID: id, Seed: seed}
	for {
		for i := 0; i < game.NumPlayers; i++ {
			seat := (game.FirstPlayer + i) % game.NumPlayers
			if game.Players[seat].Dice == 0 {
				continue
			}
			roll, err := game.RollDice(seat)
			if err != nil {
				return result, err
			}
			casino := agents[seat].ChooseCasino(game, seat, roll)
			if err := game.PlayMove(seat, casino, roll); err != nil {
				return result, fmt.Errorf("agent for seat %d played an illegal move: %w", seat, err)
			}
			result.Moves++
		}
		if !game.IsRoundOver() {
			continue
		}

		if err := game.ValidateConservation(); err != nil {
			return result, err
		}
		finished := game.IsGameOver()
		round := game.Round
		if err := game.ResolveRound(); err != nil {
			if errors.Is(err, vegas.ErrDeckExhausted) {
				result.Aborted = true
				result.Rounds = round
				break
			}
			return result, err
		}
		if finished {
			result.Rounds = round
			break
		}
	}

	if err := game.ValidateConservation(); err != nil {
		return result, err
	}
	result.Scores = game.Scores()
	result.Winners = game.Winners()
	result.BillsPaid = game.BillsPaid()
	return result, nil
}

// buildAgents creates one agent per seat using the configured strategies.
func (s *Simulator) buildAgents(rng *rand.Rand) ([]Agent, error) {
	agents := make([]Agent, s.config.Players)
	for seat := range agents {
		agent, err := NewAgent(s.config.StrategyFor(seat), rng)
		if err != nil {
			return nil, err
		}
		agents[seat] = agent
	}
	return agents, nil
}
