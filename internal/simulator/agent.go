package simulator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/vegasforbots/vegas"
)

// Agent decides which casino a roll's dice go to. Implementations see the
// full game state and must return a casino index that is legal for the
// roll, i.e. a face with at least one die showing.
type Agent interface {
	ChooseCasino(g *vegas.Game, seat int, roll vegas.Roll) int
}

// NewAgent builds an agent for a named strategy.
func NewAgent(strategy string, rng *rand.Rand) (Agent, error) {
	switch strategy {
	case "random":
		return NewRandomAgent(rng), nil
	case "greedy":
		return &GreedyAgent{}, nil
	case "first":
		return &FirstAgent{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (valid: random, greedy, first)", strategy)
	}
}

// RandomAgent allocates to a uniformly random face present in the roll.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent creates a random agent drawing from the given RNG.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	if rng == nil {
		panic("rng is required for random agent creation")
	}
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) ChooseCasino(g *vegas.Game, seat int, roll vegas.Roll) int {
	faces := roll.Faces()
	return faces[a.rng.IntN(len(faces))]
}

// GreedyAgent allocates the face with the most dice, breaking ties toward
// the casino holding more bill value.
type GreedyAgent struct{}

func (a *GreedyAgent) ChooseCasino(g *vegas.Game, seat int, roll vegas.Roll) int {
	best := -1
	for f, n := range roll {
		if n == 0 {
			continue
		}
		switch {
		case best < 0:
			best = f
		case n > roll[best]:
			best = f
		case n == roll[best] && g.Casinos[f].Value() > g.Casinos[best].Value():
			best = f
		}
	}
	return best
}

// FirstAgent always allocates the lowest face present, a fully
// deterministic baseline.
type FirstAgent struct{}

func (a *FirstAgent) ChooseCasino(g *vegas.Game, seat int, roll vegas.Roll) int {
	for f, n := range roll {
		if n > 0 {
			return f
		}
	}
	return 0
}
