package lsystem

import (
	"fmt"

	"github.com/pkg/errors"
)

// Configuration errors, returned when a rule set is declared.
var (
	ErrProbabilityOverflow = errors.New("probability overflow")
	ErrProbabilitySum      = errors.New("sum of the probabilities is smaller than 1.0")
	ErrNegativeProbability = errors.New("negative probability")
	ErrInvalidProbability  = errors.New("probability is not a finite number")
	ErrRuleCount           = errors.New("number of rules doesn't match the declared number")
	ErrEmptyRuleSet        = errors.New("rule set has no alternatives")
)

// Resource errors, wrapped in a *ResourceError.
var (
	ErrSequenceTooLong = errors.New("sequence length limit exceeded")
	ErrDepthExceeded   = errors.New("generation depth limit exceeded")
	ErrNegativeDepth   = errors.New("negative generation depth")
)

// ErrDrawOutOfRange is wrapped by the *InvariantError raised when a random
// draw satisfies no cumulative bound.
var ErrDrawOutOfRange = errors.New("random value outside [0, 1)")

// ResourceError reports a generation that outgrew a caller-declared bound.
// The host may retry with a smaller depth.
type ResourceError struct {
	Err        error
	Generation int
	Length     int
	Limit      int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("generation %d: %v (%d > %d)", e.Generation, e.Err, e.Length, e.Limit)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// InvariantError is a panic value for states validated input can never reach.
type InvariantError struct {
	Err   error
	Value float64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: %v (value %v)", e.Err, e.Value)
}

func (e *InvariantError) Unwrap() error { return e.Err }
