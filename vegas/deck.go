package vegas

import (
	"math/rand/v2"
)

// Deck is the shared pool of bills. Bills leave the deck when casinos are
// funded and come back when unclaimed bills are recycled at the end of a
// round, so the deck shrinks by exactly the number of bills paid out.
type Deck struct {
	bills []Bill
	rng   *rand.Rand // random source for deterministic shuffling
}

// NewDeck creates a full 54-bill deck, shuffled with the explicit RNG.
// The RNG is required to make randomness explicit and testing deterministic.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{
		bills: make([]Bill, 0, DeckSize),
		rng:   rng,
	}
	for _, c := range billComposition {
		for range c.Count {
			d.bills = append(d.bills, c.Value)
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the remaining bills using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.bills) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.bills[i], d.bills[j] = d.bills[j], d.bills[i]
	}
}

// Draw removes and returns the top bill. The second return value is false
// when the deck is empty.
func (d *Deck) Draw() (Bill, bool) {
	if len(d.bills) == 0 {
		return NoBill, false
	}
	b := d.bills[0]
	d.bills = d.bills[1:]
	return b, true
}

// Return puts an unclaimed bill back into the deck. NoBill padding is
// dropped, it only exists on casinos.
func (d *Deck) Return(b Bill) {
	if b.Empty() {
		return
	}
	d.bills = append(d.bills, b)
}

// Len returns the number of bills left in the deck.
func (d *Deck) Len() int {
	return len(d.bills)
}

// TotalValue returns the combined value of the remaining bills.
func (d *Deck) TotalValue() int {
	total := 0
	for _, b := range d.bills {
		total += b.Value()
	}
	return total
}
