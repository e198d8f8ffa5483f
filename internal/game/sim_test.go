package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSim_RandomPlayerAlwaysFinishes(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		sim, err := NewSim(WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, sim.RunRounds(3, 20000), "seed %d", seed)
		assert.Equal(t, 3, sim.Stats.Rounds)
		for _, r := range sim.Results {
			assert.Equal(t, PhaseEnded, r.Phase)
			assert.Contains(t, []EndReason{EndFailLimit, EndTimeout}, r.Reason)
		}
	}
}

func TestSim_PerfectMemoryClearsBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = Rules{GuardRevealed: true, EndOnClear: true}
	sim, err := NewSim(
		WithConfig(cfg),
		WithSeed(11),
		WithPlayer(NewMemoryPlayer(0, rand.New(rand.NewSource(1)))),
	)
	require.NoError(t, err)
	require.NoError(t, sim.RunRounds(2, 20000))

	for _, r := range sim.Results {
		assert.Equal(t, EndCleared, r.Reason)
		assert.Equal(t, cfg.CardCount/2, r.Score)
		assert.Zero(t, r.Fails)
	}
	assert.Equal(t, 2, sim.Stats.Clears)
}

func TestSim_DeterministicWithSeed(t *testing.T) {
	run := func() []int {
		sim, err := NewSim(WithSeed(5), WithRules(Rules{RehideMismatch: true}))
		require.NoError(t, err)
		require.NoError(t, sim.RunRounds(2, 20000))
		var out []int
		for _, r := range sim.Results {
			out = append(out, r.Score, r.Fails, int(r.Reason))
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestSim_IdleRoundTimesOut(t *testing.T) {
	// No clicks at all: inspection + play seconds elapse, then timeout.
	sim, err := NewSim(WithSeed(2), WithPlayer(idlePlayer{}), WithFrameStep(100*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, sim.RunRounds(1, 1000))

	r := sim.Results[0]
	assert.Equal(t, EndTimeout, r.Reason)
	assert.Zero(t, r.Score)
	assert.Zero(t, r.Fails)
	// Setup frame, then 6s + 21s at 10 frames per second.
	assert.InDelta(t, 1+270, sim.Machine.Frame(), 2)
}

type idlePlayer struct{}

func (idlePlayer) Observe(BoardView)                      {}
func (idlePlayer) Reset()                                 {}
func (idlePlayer) Next(BoardView, *rand.Rand) (int, bool) { return -1, false }
