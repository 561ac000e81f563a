package vegas

import (
	"fmt"
	"sort"
)

const (
	// NumCasinos is the number of casinos, one per die face.
	NumCasinos = 6

	// NumBillSlots is the fixed number of bill slots per casino. Slots the
	// deal leaves unfunded are padded with NoBill.
	NumBillSlots = 5

	// MinCasinoValue is the minimum combined bill value a casino must be
	// funded with at the start of each round.
	MinCasinoValue = 50
)

// Casino holds one casino's prize bills and the dice placed on it, indexed
// by seat. Bills are kept sorted highest first; payouts consume them from
// the front.
type Casino struct {
	Bills []Bill
	Dice  [MaxPlayers]int
}

// Value returns the combined value of the casino's remaining bills.
func (c *Casino) Value() int {
	total := 0
	for _, b := range c.Bills {
		total += b.Value()
	}
	return total
}

// BillCount returns the number of real bills on the casino, ignoring
// NoBill padding.
func (c *Casino) BillCount() int {
	count := 0
	for _, b := range c.Bills {
		if !b.Empty() {
			count++
		}
	}
	return count
}

// DiceCount returns the total dice placed on the casino across all seats.
func (c *Casino) DiceCount() int {
	total := 0
	for _, n := range c.Dice {
		total += n
	}
	return total
}

// dealCasinos funds all six casinos from the deck: each draws bills until it
// reaches MinCasinoValue, is padded to NumBillSlots with NoBill, and sorts
// its bills highest first. Fails with ErrDeckExhausted if the deck runs dry
// before a casino is funded; everything drawn goes back to the deck so the
// caller's state stays conserved.
func dealCasinos(deck *Deck) ([NumCasinos]Casino, error) {
	var casinos [NumCasinos]Casino
	for i := range casinos {
		bills := make([]Bill, 0, NumBillSlots)
		value := 0
		for value < MinCasinoValue {
			b, ok := deck.Draw()
			if !ok {
				for _, drawn := range bills {
					deck.Return(drawn)
				}
				for j := 0; j < i; j++ {
					for _, drawn := range casinos[j].Bills {
						deck.Return(drawn)
					}
				}
				return [NumCasinos]Casino{}, fmt.Errorf("dealing casino %d: %w", i+1, ErrDeckExhausted)
			}
			bills = append(bills, b)
			value += b.Value()
		}
		for len(bills) < NumBillSlots {
			bills = append(bills, NoBill)
		}
		sort.Slice(bills, func(a, b int) bool {
			return bills[a] > bills[b]
		})
		casinos[i].Bills = bills
	}
	return casinos, nil
}
