package vegas

import (
	"fmt"
	"strings"
)

// NumFaces is the number of die faces; face i maps to casino i.
const NumFaces = 6

// Roll holds the face counts from throwing a player's remaining dice.
// Roll[i] is the number of dice showing face i+1.
type Roll [NumFaces]int

// Sum returns the total number of dice in the roll.
func (r Roll) Sum() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// Faces returns the casino indexes the roll can legally be allocated to,
// in ascending order.
func (r Roll) Faces() []int {
	faces := make([]int, 0, NumFaces)
	for i, n := range r {
		if n > 0 {
			faces = append(faces, i)
		}
	}
	return faces
}

// String renders the roll as face:count pairs, e.g. "1x3 4x2 6x1".
func (r Roll) String() string {
	var sb strings.Builder
	for i, n := range r {
		if n == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%dx%d", i+1, n)
	}
	if sb.Len() == 0 {
		return "empty"
	}
	return sb.String()
}

// RollDice throws all of the player's remaining dice and returns the face
// counts. The game state is not modified; dice only move when the roll is
// allocated with PlayMove.
func (g *Game) RollDice(player int) (Roll, error) {
	if player < 0 || player >= g.NumPlayers {
		return Roll{}, fmt.Errorf("roll: player %d out of range: %w", player, ErrInvalidMove)
	}
	if g.terminal {
		return Roll{}, fmt.Errorf("roll: %w", ErrGameOver)
	}

	var roll Roll
	for range g.Players[player].Dice {
		roll[g.rng.IntN(NumFaces)]++
	}
	return roll, nil
}
