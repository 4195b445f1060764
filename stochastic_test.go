package lsystem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rand"
)

var leafRules = MustRuleSet([]float64{0.7, 0.3},
	[]Token{"[", "N", "[", "+", "L", "]", "-", "L", "]"},
	[]Token{"[", "N", "[", "+", "L", "]", "[", "L", "]", "-", "L", "]"},
)

func produceTree(t Token, r float64) []Token {
	switch t {
	case "L":
		return leafRules.Choose(r)
	case "N":
		return []Token{"O", "N"}
	default:
		return []Token{t}
	}
}

func TestStochasticSameSeedSameOutput(t *testing.T) {
	ls := NewStochastic([]Token{"L"}, produceTree)

	first, err := ls.IterateSeed(6, 42)
	require.NoError(t, err)
	second, err := ls.IterateSeed(6, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Another engine drawing in between does not disturb the stream.
	other := NewStochastic([]Token{"L"}, produceTree)
	_, err = other.IterateSeed(6, 7)
	require.NoError(t, err)
	third, err := ls.IterateSeed(6, 42)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestStochasticSeedsDiffer(t *testing.T) {
	ls := NewStochastic([]Token{"L"}, produceTree)

	distinct := map[int]bool{}
	for seed := uint64(0); seed < 16; seed++ {
		out, err := ls.IterateSeed(5, seed)
		require.NoError(t, err)
		distinct[len(out)] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestStochasticIterateReturnsReplayableSeed(t *testing.T) {
	ls := NewStochastic([]Token{"L"}, produceTree)

	out, seed, err := ls.Iterate(5)
	require.NoError(t, err)
	replay, err := ls.IterateSeed(5, seed)
	require.NoError(t, err)
	assert.Equal(t, out, replay)
}

func TestStochasticConcurrentRuns(t *testing.T) {
	ls := NewStochastic([]Token{"L"}, produceTree)

	want := make([][]Token, 8)
	for i := range want {
		out, err := ls.IterateSeed(6, uint64(i))
		require.NoError(t, err)
		want[i] = out
	}

	got := make([][]Token, len(want))
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := ls.IterateSeed(6, uint64(i))
			if err == nil {
				got[i] = out
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, want, got)
}

func TestStochasticStepComposes(t *testing.T) {
	ls := NewStochastic([]Token{"L"}, produceTree)
	want, err := ls.IterateSeed(4, 99)
	require.NoError(t, err)

	rng := rand.New(99)
	seq := ls.Axiom()
	for i := 0; i < 4; i++ {
		seq, err = ls.Step(seq, rng)
		require.NoError(t, err)
	}
	assert.Equal(t, want, seq)
}

func TestStochasticOneDrawPerSymbol(t *testing.T) {
	var draws []float64
	ls := NewStochastic([]Token{"A", "B", "C"}, func(t Token, r float64) []Token {
		draws = append(draws, r)
		return []Token{t}
	})

	_, err := ls.IterateSeed(2, 5)
	require.NoError(t, err)
	require.Len(t, draws, 6)

	rng := rand.New(5)
	for _, d := range draws {
		assert.Equal(t, rng.Float64(), d)
	}
}

func TestStochasticMaxLength(t *testing.T) {
	ls := NewStochastic([]Token{"L"}, produceTree, WithMaxLength(100))
	_, err := ls.IterateSeed(10, 1)
	assert.ErrorIs(t, err, ErrSequenceTooLong)
}

func TestStochasticBalancedBrackets(t *testing.T) {
	ls := NewStochastic([]Token{"L"}, produceTree)
	out, err := ls.IterateSeed(7, 3)
	require.NoError(t, err)

	depth := 0
	for _, tok := range out {
		switch tok {
		case "[":
			depth++
		case "]":
			depth--
			require.GreaterOrEqual(t, depth, 0)
		}
	}
	assert.Zero(t, depth)
}
