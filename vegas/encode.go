package vegas

import (
	"fmt"
)

// CashNorm is the scale cash amounts are divided by in encoded states.
const CashNorm = 100

// EncodedLen is the fixed length of the vector Encode returns:
// 3 header values, MaxPlayers cash entries, then dice and bill slots for
// every casino, then the observer's roll faces.
const EncodedLen = 3 + MaxPlayers + NumCasinos*(MaxPlayers+NumBillSlots) + NumFaces

// Encode projects the game state into a fixed-length normalized vector from
// the observing player's point of view. Per-seat values are rotated so the
// observer's entry always comes first, letting one policy play any seat.
// The roll is the observer's current throw, it is not stored in the game
// state so it must be re-encoded after every roll.
//
// Layout: player count ratio, round progress, observer's turn-order offset
// from the opening seat, each seat's cash, then for each casino its per-seat
// placed dice and its bill slots, and finally the roll's face counts.
func (g *Game) Encode(observer int, roll Roll) ([]float64, error) {
	if observer < 0 || observer >= g.NumPlayers {
		return nil, fmt.Errorf("encode: observer %d out of range: %w", observer, ErrInvalidMove)
	}

	vec := make([]float64, 0, EncodedLen)
	vec = append(vec, float64(g.NumPlayers)/MaxPlayers)
	vec = append(vec, float64(g.Round)/NumRounds)

	offset := (observer - g.FirstPlayer + g.NumPlayers) % g.NumPlayers
	vec = append(vec, float64(offset)/float64(g.NumPlayers))

	for i := 0; i < MaxPlayers; i++ {
		seat := (observer + i) % MaxPlayers
		vec = append(vec, float64(g.Players[seat].Cash)/CashNorm)
	}

	for ci := range g.Casinos {
		c := &g.Casinos[ci]
		for i := 0; i < MaxPlayers; i++ {
			seat := (observer + i) % MaxPlayers
			vec = append(vec, float64(c.Dice[seat])/NumDice)
		}
		for s := 0; s < NumBillSlots; s++ {
			var b Bill
			if s < len(c.Bills) {
				b = c.Bills[s]
			}
			vec = append(vec, float64(b)/MaxBillValue)
		}
	}

	for _, n := range roll {
		vec = append(vec, float64(n)/NumDice)
	}
	return vec, nil
}
