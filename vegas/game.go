package vegas

import (
	"fmt"
	"math/rand/v2"
)

const (
	// MinPlayers and MaxPlayers bound the seated player count. State arrays
	// are always MaxPlayers wide; unused seats are inert padding.
	MinPlayers = 2
	MaxPlayers = 5

	// NumDice is the number of dice each player starts every round with.
	NumDice = 8

	// NumRounds is the number of rounds in a full game.
	NumRounds = 4
)

// Game is the authoritative state of one match. Fields are exported for
// read access by agents and encoders; all mutation goes through RollDice,
// PlayMove and ResolveRound so the invariants hold.
//
// A Game is not safe for concurrent use. Run one goroutine per game.
type Game struct {
	ID          string
	NumPlayers  int
	Round       int // 1-based, terminal after round NumRounds resolves
	FirstPlayer int // seat that opens the current round
	Players     [MaxPlayers]Player
	Casinos     [NumCasinos]Casino
	Deck        *Deck

	rng       *rand.Rand
	events    EventBus
	terminal  bool
	billsPaid int

	// Deck totals captured before the first deal, the baseline every
	// conservation check compares against.
	startBills int
	startValue int
}

// PlayMove allocates all dice showing the casino's face from the player's
// roll onto that casino. The roll must come from RollDice for the same
// player with their current dice count, the engine rejects allocations the
// player cannot cover.
func (g *Game) PlayMove(player, casino int, roll Roll) error {
	if g.terminal {
		return fmt.Errorf("play move: %w", ErrGameOver)
	}
	if player < 0 || player >= g.NumPlayers {
		return fmt.Errorf("play move: player %d out of range: %w", player, ErrInvalidMove)
	}
	if casino < 0 || casino >= NumCasinos {
		return fmt.Errorf("play move: casino %d out of range: %w", casino, ErrInvalidMove)
	}

	n := roll[casino]
	if n == 0 {
		return fmt.Errorf("play move: no dice showing face %d: %w", casino+1, ErrInvalidMove)
	}
	p := &g.Players[player]
	if n > p.Dice {
		return fmt.Errorf("play move: allocating %d dice with %d remaining: %w", n, p.Dice, ErrInvalidMove)
	}

	p.Dice -= n
	g.Casinos[casino].Dice[player] += n

	g.publish(NewMovePlayedEvent(g.ID, g.Round, player, casino, n, p.Dice))
	return nil
}

// IsRoundOver reports whether every seated player has placed all their dice.
func (g *Game) IsRoundOver() bool {
	for i := 0; i < g.NumPlayers; i++ {
		if g.Players[i].Dice > 0 {
			return false
		}
	}
	return true
}

// IsGameOver reports whether the match has reached its terminal state: the
// final round's dice are all placed, or the game was cut short by deck
// exhaustion.
func (g *Game) IsGameOver() bool {
	return g.terminal || (g.Round == NumRounds && g.IsRoundOver())
}

// DiceInPlay returns the total unplayed dice held by seated players.
func (g *Game) DiceInPlay() int {
	total := 0
	for i := 0; i < g.NumPlayers; i++ {
		total += g.Players[i].Dice
	}
	return total
}

// ActivePlayers returns a view of the seated players, excluding padding
// seats. The slice aliases the game state, as the Players field does.
func (g *Game) ActivePlayers() []Player {
	return g.Players[:g.NumPlayers]
}

// Scores returns each seated player's cash, indexed by seat.
func (g *Game) Scores() []int {
	players := g.ActivePlayers()
	scores := make([]int, len(players))
	for i := range players {
		scores[i] = players[i].Cash
	}
	return scores
}

// Winners returns the seat(s) holding the most cash. More than one seat
// means the game (as it stands) is drawn.
func (g *Game) Winners() []int {
	best := 0
	for i := 0; i < g.NumPlayers; i++ {
		if g.Players[i].Cash > best {
			best = g.Players[i].Cash
		}
	}
	winners := make([]int, 0, g.NumPlayers)
	for i := 0; i < g.NumPlayers; i++ {
		if g.Players[i].Cash == best {
			winners = append(winners, i)
		}
	}
	return winners
}

// BillsPaid returns the number of bills paid out to players so far.
func (g *Game) BillsPaid() int {
	return g.billsPaid
}

// ValidateConservation ensures no bills or dice were created or destroyed.
// Every bill is in the deck, on a casino, or already paid out; every die is
// either unplayed or placed on a casino.
func (g *Game) ValidateConservation() error {
	bills := g.Deck.Len()
	value := g.Deck.TotalValue()
	dice := g.DiceInPlay()
	for i := range g.Casinos {
		bills += g.Casinos[i].BillCount()
		value += g.Casinos[i].Value()
		dice += g.Casinos[i].DiceCount()
	}
	cash := 0
	for i := range g.Players {
		cash += g.Players[i].Cash
	}

	if bills+g.billsPaid != g.startBills {
		return fmt.Errorf("bill conservation violation: expected %d total bills, but found %d (difference: %d)",
			g.startBills, bills+g.billsPaid, bills+g.billsPaid-g.startBills)
	}
	if value+cash != g.startValue {
		return fmt.Errorf("cash conservation violation: expected %d total value, but found %d (difference: %d)",
			g.startValue, value+cash, value+cash-g.startValue)
	}
	if want := g.NumPlayers * NumDice; dice != want {
		return fmt.Errorf("dice conservation violation: expected %d dice, but found %d (difference: %d)",
			want, dice, dice-want)
	}
	return nil
}

func (g *Game) publish(event GameEvent) {
	if g.events != nil {
		g.events.Publish(event)
	}
}
