package lsystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSetChoose(t *testing.T) {
	rs, err := NewRuleSet([]float64{0.7, 0.3}, []Token{"A"}, []Token{"B"})
	require.NoError(t, err)

	assert.Equal(t, []Token{"A"}, rs.Choose(0))
	assert.Equal(t, []Token{"A"}, rs.Choose(0.5))
	assert.Equal(t, []Token{"B"}, rs.Choose(0.7))
	assert.Equal(t, []Token{"B"}, rs.Choose(0.8))
	assert.Equal(t, []Token{"B"}, rs.Choose(0.9999999))
}

func TestRuleSetChooseOutOfRangePanics(t *testing.T) {
	rs := MustRuleSet([]float64{0.7, 0.3}, []Token{"A"}, []Token{"B"})

	for _, r := range []float64{1.0, 1.5, -0.1} {
		func() {
			defer func() {
				v := recover()
				require.NotNil(t, v, "draw %v", r)
				ie, ok := v.(*InvariantError)
				require.True(t, ok, "panic value %T", v)
				assert.ErrorIs(t, ie, ErrDrawOutOfRange)
				assert.Equal(t, r, ie.Value)
			}()
			rs.Choose(r)
		}()
	}
}

func TestRuleSetRejectsCountMismatch(t *testing.T) {
	_, err := NewRuleSet([]float64{0.5, 0.5}, []Token{"A"})
	assert.ErrorIs(t, err, ErrRuleCount)
}

func TestRuleSetRejectsBadWeights(t *testing.T) {
	_, err := NewRuleSet([]float64{0.5, 0.6}, []Token{"A"}, []Token{"B"})
	assert.ErrorIs(t, err, ErrProbabilityOverflow)

	_, err = NewWeightedRuleSet(Weighted[Token]{Probability: 0.2, Successor: []Token{"A"}})
	assert.ErrorIs(t, err, ErrProbabilitySum)
}

func TestMustRuleSetPanicsOnMalformedDeclaration(t *testing.T) {
	assert.Panics(t, func() {
		MustRuleSet([]float64{0.3, 0.3}, []Token{"A"}, []Token{"B"})
	})
}

func TestRuleSetOwnsSuccessors(t *testing.T) {
	succ := []Token{"A", "B"}
	rs := MustRuleSet([]float64{1}, succ)
	succ[0] = "Z"

	assert.Equal(t, []Token{"A", "B"}, rs.Choose(0.3))
}

func TestRuleSetAlternative(t *testing.T) {
	rs := MustRuleSet([]float64{0.25, 0.75}, []Token{"A"}, []Token{"B"})

	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, []float64{0.25, 1}, rs.Bounds())
	alt := rs.Alternative(1)
	assert.InDelta(t, 0.75, alt.Probability, 1e-12)
	assert.Equal(t, []Token{"B"}, alt.Successor)
}

func BenchmarkChooseSuccessor(b *testing.B) {
	r, err := ParseRule("L", `0.1 L u L w F e; 0.1 L_ u L e F w; 0.1 L_ u L n F s; 0.1 L_ u L s F n; 0.04 L_ [ w L_ w u seed ]; 0.04 L_ [ e L_ e u seed ]; 0.04 L_ [ s L_ s u seed ]; 0.04 L_ [ n L_ n u seed ]; 0.44 L`)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ChooseSuccessor(float64(i%1000) / 1000)
	}
}
