// Package vegas implements the core rules of the Las Vegas dice game.
//
// The main type is Game, which manages a full match: the bill deck, the six
// casinos, per-player dice and cash, round resolution and payouts. Bots (or
// humans) drive the game by rolling dice and allocating one face per turn.
//
// # Basic Usage
//
// Create and run a game:
//
//	rng := randutil.New(time.Now().UnixNano())
//	g, err := vegas.NewGame(rng, 4)
//	// Take turns until the round is over...
//	roll, _ := g.RollDice(seat)
//	err = g.PlayMove(seat, casino, roll)
//	// Pay out and move to the next round
//	if g.IsRoundOver() {
//	    err = g.ResolveRound()
//	}
//
// # Deterministic Testing
//
// All randomness flows through the injected *rand.Rand, so a fixed seed
// reproduces a full game:
//
//	rng := randutil.New(42)
//	g, _ := vegas.NewGame(rng, 3)
//
// You can also provide a pre-built deck for complete control over dealing:
//
//	deck := vegas.NewDeck(rng)
//	g, _ := vegas.NewGame(rng, 3, vegas.WithDeck(deck))
//
// # Architecture
//
// Game delegates responsibilities to specialized components:
//   - Deck: the shuffled bill pool with draw/return and reshuffling
//   - Casino: per-casino bill slots and placed dice
//   - Roll: face counts for a throw of a player's remaining dice
//   - Encode: fixed-length observer-relative feature vector for bots
//
// Each game is independent and single-goroutine; run many games in parallel
// by giving each its own Game and RNG.
package vegas
