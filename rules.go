package lsystem

import "github.com/pkg/errors"

// Weighted is one alternative of a stochastic production.
type Weighted[S any] struct {
	Probability float64
	Successor   []S
}

// RuleSet holds the alternatives of one symbol together with their
// cumulative bounds. It is immutable once built and safe for concurrent use.
type RuleSet[S any] struct {
	bounds     []float64
	successors [][]S
}

// NewRuleSet validates the probabilities and pairs them with successors in
// declaration order.
func NewRuleSet[S any](probabilities []float64, successors ...[]S) (*RuleSet[S], error) {
	if len(probabilities) != len(successors) {
		return nil, errors.Wrapf(ErrRuleCount, "%d rules for %d declared", len(successors), len(probabilities))
	}
	bounds, err := Accumulate(probabilities)
	if err != nil {
		return nil, err
	}

	owned := make([][]S, len(successors))
	for i, s := range successors {
		owned[i] = append([]S(nil), s...)
	}
	return &RuleSet[S]{bounds: bounds, successors: owned}, nil
}

// NewWeightedRuleSet is NewRuleSet for a list of pairs.
func NewWeightedRuleSet[S any](alternatives ...Weighted[S]) (*RuleSet[S], error) {
	probabilities := make([]float64, len(alternatives))
	successors := make([][]S, len(alternatives))
	for i, a := range alternatives {
		probabilities[i] = a.Probability
		successors[i] = a.Successor
	}
	return NewRuleSet(probabilities, successors...)
}

// MustRuleSet is like NewRuleSet but panics on a malformed declaration.
// It simplifies initialization of package level grammars.
func MustRuleSet[S any](probabilities []float64, successors ...[]S) *RuleSet[S] {
	rs, err := NewRuleSet(probabilities, successors...)
	if err != nil {
		panic(errors.Wrap(err, "lsystem: invalid rule set"))
	}
	return rs
}

// Choose returns the successor of the first alternative whose cumulative
// bound exceeds r. r must lie in [0, 1): anything else, 1.0 included, is
// reported by panicking with an *InvariantError.
//
// The returned slice is shared with the rule set and must not be modified.
func (rs *RuleSet[S]) Choose(r float64) []S {
	if r >= 0 {
		for i, bound := range rs.bounds {
			if r < bound {
				return rs.successors[i]
			}
		}
	}
	panic(&InvariantError{Err: ErrDrawOutOfRange, Value: r})
}

// Len returns the number of alternatives.
func (rs *RuleSet[S]) Len() int {
	return len(rs.successors)
}

// Bounds returns a copy of the cumulative bounds.
func (rs *RuleSet[S]) Bounds() []float64 {
	return append([]float64(nil), rs.bounds...)
}

// Alternative returns the probability and successor declared at index i.
func (rs *RuleSet[S]) Alternative(i int) Weighted[S] {
	lower := 0.0
	if i > 0 {
		lower = rs.bounds[i-1]
	}
	return Weighted[S]{
		Probability: rs.bounds[i] - lower,
		Successor:   rs.successors[i],
	}
}
