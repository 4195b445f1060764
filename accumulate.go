package lsystem

import (
	"math"

	"github.com/pkg/errors"
)

// Tolerance absorbs rounding when weights such as 0.1 are summed.
const Tolerance = 1e-9

// Accumulate turns a list of probabilities into their running sums.
//
// It fails when a weight is NaN or infinite, when a partial sum exceeds 1.0
// or when the total falls short of it. The returned bounds are
// non-decreasing and the last one is exactly 1.0, so any draw in [0, 1) is
// covered.
func Accumulate(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyRuleSet
	}

	sums := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.Wrapf(ErrInvalidProbability, "weight %d is %v", i, w)
		}
		if w < 0 {
			return nil, errors.Wrapf(ErrNegativeProbability, "weight %d is %v", i, w)
		}
		sum += w
		if sum > 1.0+Tolerance {
			return nil, errors.Wrapf(ErrProbabilityOverflow, "cumulative sum %v at weight %d", sum, i)
		}
		sums[i] = min(sum, 1.0)
	}
	if sum < 1.0-Tolerance {
		return nil, errors.Wrapf(ErrProbabilitySum, "total %v", sum)
	}
	sums[len(sums)-1] = 1.0

	return sums, nil
}
