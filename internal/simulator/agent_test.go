package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/vegasforbots/internal/randutil"
	"github.com/lox/vegasforbots/vegas"
)

func TestNewAgent(t *testing.T) {
	rng := randutil.New(1)

	for _, strategy := range []string{"random", "greedy", "first"} {
		agent, err := NewAgent(strategy, rng)
		require.NoError(t, err, strategy)
		require.NotNil(t, agent, strategy)
	}

	_, err := NewAgent("psychic", rng)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestRandomAgentPicksRolledFaces(t *testing.T) {
	g, err := vegas.NewGame(randutil.New(1), 2)
	require.NoError(t, err)

	agent := NewRandomAgent(randutil.New(2))
	roll := vegas.Roll{3, 0, 2, 0, 0, 3}
	for i := 0; i < 50; i++ {
		casino := agent.ChooseCasino(g, 0, roll)
		assert.Contains(t, []int{0, 2, 5}, casino)
	}
}

func TestNewRandomAgentPanicsWithoutRNG(t *testing.T) {
	assert.Panics(t, func() {
		NewRandomAgent(nil)
	})
}

func TestGreedyAgentPicksMostDice(t *testing.T) {
	g, err := vegas.NewGame(randutil.New(1), 2)
	require.NoError(t, err)

	agent := &GreedyAgent{}
	assert.Equal(t, 3, agent.ChooseCasino(g, 0, vegas.Roll{1, 0, 2, 4, 1, 0}))
	assert.Equal(t, 5, agent.ChooseCasino(g, 0, vegas.Roll{0, 0, 0, 0, 0, 8}))
}

func TestGreedyAgentBreaksTiesByCasinoValue(t *testing.T) {
	g, err := vegas.NewGame(randutil.New(1), 2)
	require.NoError(t, err)

	roll := vegas.Roll{4, 0, 0, 0, 4, 0}
	want := 0
	if g.Casinos[4].Value() > g.Casinos[0].Value() {
		want = 4
	}
	agent := &GreedyAgent{}
	assert.Equal(t, want, agent.ChooseCasino(g, 0, roll))
}

func TestFirstAgentPicksLowestFace(t *testing.T) {
	g, err := vegas.NewGame(randutil.New(1), 2)
	require.NoError(t, err)

	agent := &FirstAgent{}
	assert.Equal(t, 2, agent.ChooseCasino(g, 0, vegas.Roll{0, 0, 5, 1, 2, 0}))
	assert.Equal(t, 0, agent.ChooseCasino(g, 0, vegas.Roll{1, 1, 1, 1, 1, 3}))
}
