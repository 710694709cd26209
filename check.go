// Package fixpoint analyzes whether repeated application of a text
// transformation converges to a fixed point, enters a cycle, or diverges,
// and selects a final result that minimizes disruption to the input.
//
// Formatters are expected to be idempotent: formatting twice should give
// the same output as formatting once. Real formatters are not always, and
// Check characterizes exactly how a given one misbehaves on a given input.
package fixpoint

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultMaxIterations bounds the number of applications performed by
// Check when no override is given.
const DefaultMaxIterations = 10

// ErrInvalidBound is returned by Check when the configured iteration bound
// is too small to tell a fixed point from a cycle.
var ErrInvalidBound = errors.New("max iterations must be at least 2")

// Func applies the transformation once to the given text. An error aborts
// the analysis immediately and is never retried.
type Func func(current string) (string, error)

// Option configures a single Check call.
type Option func(*options)

type options struct {
	maxIterations int
}

// WithMaxIterations overrides the maximum number of applications performed
// before the analysis reports divergence. Must be at least 2.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// Check repeatedly applies f to original, recording each distinct output,
// until the sequence reaches a fixed point, repeats an earlier value, or
// exhausts the iteration bound. The subject identifies what is being
// analyzed and is carried through to the result unchanged.
//
// Check verifies that f(f(original)) == f(original). If that holds on the
// first try the result is WellBehaved; otherwise the result's Outcome
// describes the failure mode. Divergence is a classification, not an
// error: Check returns a non-nil error only for invalid arguments or when
// f itself fails.
func Check(f Func, subject, original string, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, errors.New("fixpoint: transformation must not be nil")
	}
	o := options{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxIterations < 2 {
		return nil, fmt.Errorf("fixpoint: %w, got %d", ErrInvalidBound, o.maxIterations)
	}

	input, err := f(original)
	if err != nil {
		return nil, fmt.Errorf("fixpoint: applying transformation to %s: %w", subject, err)
	}
	steps := []string{input}
	if input == original {
		return newResult(subject, Converged, steps, original), nil
	}

	for len(steps) < o.maxIterations {
		output, err := f(input)
		if err != nil {
			return nil, fmt.Errorf("fixpoint: applying transformation to %s: %w", subject, err)
		}
		if output == input {
			return newResult(subject, Converged, steps, original), nil
		}
		// cycle closure is by value equality: identical content produced
		// at different iterations closes the loop
		if idx := slices.Index(steps, output); idx >= 0 {
			return newResult(subject, Cycle, steps[idx:], original), nil
		}
		steps = append(steps, output)
		input = output
	}
	return newResult(subject, Diverged, steps, original), nil
}
