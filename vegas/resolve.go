package vegas

import (
	"fmt"
	"sort"
)

// ResolveRound pays out every casino, recycles unclaimed bills into the
// deck, and then either deals the next round or ends the game.
//
// Payouts per casino: seats are ranked by placed dice descending and walked
// from the top, each seat whose dice count is unique among all seats claims
// the casino's most valuable remaining bill. Seats sharing a count form a
// tied group and claim nothing, their bills stay with the casino and are
// recycled. Unseated padding never claims a bill.
//
// On a non-final round the deck is reshuffled and redealt, every seated
// player's dice are restored, the opening seat rotates and the round counter
// advances. After the final round the game is terminal and the cash totals
// are the result. If the deck cannot fund six casinos for the next round the
// game ends early with ErrDeckExhausted.
func (g *Game) ResolveRound() error {
	if g.terminal {
		return fmt.Errorf("resolve round: %w", ErrGameOver)
	}
	if !g.IsRoundOver() {
		return fmt.Errorf("resolve round: %d dice still in play: %w", g.DiceInPlay(), ErrRoundNotOver)
	}

	paid, recycled := 0, 0
	for i := range g.Casinos {
		p, r := g.resolveCasino(i)
		paid += p
		recycled += r
	}

	g.publish(NewRoundEndEvent(g.ID, g.Round, paid, recycled))

	if g.Round == NumRounds {
		g.terminal = true
		g.publish(NewGameEndEvent(g.ID, g.Round, g.Scores(), g.Winners()))
		return nil
	}

	g.Deck.Shuffle()
	casinos, err := dealCasinos(g.Deck)
	if err != nil {
		g.terminal = true
		g.publish(NewGameEndEvent(g.ID, g.Round, g.Scores(), g.Winners()))
		return fmt.Errorf("resolve round: dealing round %d: %w", g.Round+1, err)
	}
	g.Casinos = casinos

	for i := 0; i < g.NumPlayers; i++ {
		g.Players[i].Dice = NumDice
	}
	g.FirstPlayer = (g.FirstPlayer + 1) % g.NumPlayers
	g.Round++
	return nil
}

// resolveCasino pays the casino's bills to uniquely-ranked seats and sends
// the rest back to the deck. Returns how many bills were paid and recycled.
func (g *Game) resolveCasino(ci int) (paid, recycled int) {
	c := &g.Casinos[ci]

	// Count how many seats share each dice count; only a count held by
	// exactly one seat claims a bill.
	multiplicity := make(map[int]int, MaxPlayers)
	for _, n := range c.Dice {
		multiplicity[n]++
	}

	for _, seat := range rankSeats(c.Dice) {
		if len(c.Bills) == 0 {
			break
		}
		n := c.Dice[seat]
		if multiplicity[n] != 1 {
			continue
		}
		if seat >= g.NumPlayers {
			// Padding seats hold a unique zero when exactly four play.
			// They never claim, the bill stays for recycling.
			continue
		}

		bill := c.Bills[0]
		c.Bills = c.Bills[1:]
		if bill.Empty() {
			continue
		}
		g.Players[seat].Cash += bill.Value()
		g.billsPaid++
		paid++
		g.publish(NewBillPaidEvent(g.ID, g.Round, ci, seat, bill, n))
	}

	for _, b := range c.Bills {
		if !b.Empty() {
			g.Deck.Return(b)
			recycled++
		}
	}
	c.Bills = nil
	return paid, recycled
}

// rankSeats orders all seats by placed dice descending. Tied seats keep
// seat order among themselves; resolution skips them either way.
func rankSeats(dice [MaxPlayers]int) []int {
	seats := make([]int, MaxPlayers)
	for i := range seats {
		seats[i] = i
	}
	sort.SliceStable(seats, func(a, b int) bool {
		return dice[seats[a]] > dice[seats[b]]
	})
	return seats
}
