package vegas

import "errors"

var (
	// ErrInvalidPlayerCount indicates a game was created with a player count
	// outside [MinPlayers, MaxPlayers].
	ErrInvalidPlayerCount = errors.New("invalid player count")

	// ErrInvalidMove indicates a move referenced an out-of-range seat or
	// casino, or allocated dice the roll does not contain.
	ErrInvalidMove = errors.New("invalid move")

	// ErrRoundNotOver indicates ResolveRound was called while players still
	// hold dice.
	ErrRoundNotOver = errors.New("round not over")

	// ErrGameOver indicates a move or resolution was attempted after the
	// final round was resolved.
	ErrGameOver = errors.New("game over")

	// ErrDeckExhausted indicates the deck ran out of bills while funding
	// casinos for a new round.
	ErrDeckExhausted = errors.New("bill deck exhausted")
)
