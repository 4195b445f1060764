package lsystem

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fibonacci() *LSystem[Token] {
	return New([]Token{"A"}, Rules[Token]{
		"A": {"A", "B"},
		"B": {"A"},
	}.Produce)
}

func TestAnalyseProductionRate(t *testing.T) {
	rate, err := fibonacci().AnalyseProductionRate("fib", 12)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377}, rate.Lengths)
	assert.InDelta(t, 1.618, rate.AverageGrowth(), 0.05)
	assert.Equal(t, 1, rate.Samples)
}

func TestAnalyseProductionRateStochastic(t *testing.T) {
	ls := NewStochastic([]Token{"L"}, produceTree)

	first, err := ls.AnalyseProductionRate("tree", 5, 4, 100)
	require.NoError(t, err)
	second, err := ls.AnalyseProductionRate("tree", 5, 4, 100)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1.0, first.Lengths[0])
	assert.Greater(t, first.AverageGrowth(), 1.0)
}

func TestAnalyseProductionRateResourceError(t *testing.T) {
	ls := New([]Token{"A"}, Rules[Token]{"A": {"A", "A"}}.Produce, WithMaxLength(10))
	_, err := ls.AnalyseProductionRate("doubling", 8)
	assert.ErrorIs(t, err, ErrSequenceTooLong)
}

func TestAnalyseProductionRateNegativeDepth(t *testing.T) {
	for _, depth := range []int{-1, -2, -100} {
		_, err := fibonacci().AnalyseProductionRate("fib", depth)
		assert.ErrorIs(t, err, ErrNegativeDepth, "depth %d", depth)

		_, err = NewStochastic([]Token{"L"}, produceTree).AnalyseProductionRate("tree", depth, 3, 1)
		assert.ErrorIs(t, err, ErrNegativeDepth, "depth %d", depth)
	}
}

func TestAverageGrowthEmpty(t *testing.T) {
	var rate ProductionRate
	assert.Zero(t, rate.AverageGrowth())
}

func TestRenderChart(t *testing.T) {
	rate, err := fibonacci().AnalyseProductionRate("fib", 6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rate.RenderChart(&buf))
	assert.Contains(t, buf.String(), "Production Rate Analysis")
}

func TestChartHandler(t *testing.T) {
	rate, err := fibonacci().AnalyseProductionRate("fib", 6)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	ChartHandler(rate)(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sequence length per generation")
}
