package vegas

import (
	"fmt"
	"math/rand/v2"
)

// GameOption configures a Game during creation.
type GameOption func(*gameConfig)

// gameConfig holds all configuration for creating a game.
type gameConfig struct {
	// Optional fields (set via options)
	names []string // If nil, players get generated names
	deck  *Deck    // If provided, used as-is (overrides RNG for deck creation)
	bus   EventBus // If nil, no events are published
	id    string   // If empty, the game has no identifier
}

// NewGame creates a new game with required RNG and optional configuration.
// The RNG is required to make randomness explicit and testing deterministic.
//
// Example usage:
//
//	// Production - time-seeded RNG
//	rng := randutil.New(time.Now().UnixNano())
//	g, err := vegas.NewGame(rng, 4)
//
//	// Testing - deterministic RNG
//	rng := randutil.New(42)
//	g, err := vegas.NewGame(rng, 4)
//
//	// With options
//	g, err := vegas.NewGame(rng, 2,
//	    vegas.WithPlayerNames([]string{"Alice", "Bob"}))
func NewGame(rng *rand.Rand, numPlayers int, opts ...GameOption) (*Game, error) {
	if rng == nil {
		panic("rng is required for game creation")
	}
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%d players, want %d-%d: %w",
			numPlayers, MinPlayers, MaxPlayers, ErrInvalidPlayerCount)
	}

	cfg := &gameConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Validation
	if cfg.names != nil && len(cfg.names) != numPlayers {
		panic("player names must match number of players")
	}

	// Setup deck (deck option overrides RNG if provided)
	deck := cfg.deck
	if deck == nil {
		deck = NewDeck(rng)
	}

	g := &Game{
		ID:          cfg.id,
		NumPlayers:  numPlayers,
		Round:       1,
		FirstPlayer: 0,
		Deck:        deck,
		rng:         rng,
		events:      cfg.bus,
		startBills:  deck.Len(),
		startValue:  deck.TotalValue(),
	}

	// Build players; seats beyond numPlayers stay as zeroed padding
	for i := range g.Players {
		g.Players[i].Seat = i
	}
	for i := 0; i < numPlayers; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if cfg.names != nil {
			name = cfg.names[i]
		}
		g.Players[i].Name = name
		g.Players[i].Dice = NumDice
	}

	casinos, err := dealCasinos(deck)
	if err != nil {
		return nil, err
	}
	g.Casinos = casinos

	g.publish(NewGameStartEvent(g.ID, numPlayers))
	return g, nil
}

// Option Functions

// WithPlayerNames sets the seated players' names.
// The length must match the number of players.
func WithPlayerNames(names []string) GameOption {
	return func(c *gameConfig) {
		c.names = names
	}
}

// WithDeck sets a specific pre-built deck. This overrides the RNG for deck
// creation but the RNG is still used for dice rolls, and the deck's own RNG
// drives reshuffles between rounds.
func WithDeck(deck *Deck) GameOption {
	return func(c *gameConfig) {
		c.deck = deck
	}
}

// WithEventBus sets the bus game events are published to.
func WithEventBus(bus EventBus) GameOption {
	return func(c *gameConfig) {
		c.bus = bus
	}
}

// WithGameID tags the game and its events with an identifier.
func WithGameID(id string) GameOption {
	return func(c *gameConfig) {
		c.id = id
	}
}
