package fixpoint

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gnoverse/fixpoint/comparison"
)

// ErrUnresolvable is returned by Canonical when the result diverges.
var ErrUnresolvable = errors.New("no canonical form for a diverging result")

// Outcome classifies the long-run behavior of repeated application.
type Outcome int

const (
	// Converged means the sequence of outputs reached a fixed point.
	Converged Outcome = iota
	// Cycle means the outputs entered a loop of distinct values.
	Cycle
	// Diverged means the iteration bound was exhausted without a fixed
	// point or a repeated value.
	Diverged
)

func (o Outcome) String() string {
	switch o {
	case Converged:
		return "converge"
	case Cycle:
		return "cycle"
	case Diverged:
		return "diverge"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result models the outcome of repeatedly applying a transformation to a
// single subject, characterizing slow convergence, cycles, and divergence.
// It is immutable once constructed.
type Result struct {
	subject  string
	outcome  Outcome
	steps    []string
	original string
}

func newResult(subject string, outcome Outcome, steps []string, original string) *Result {
	// defensive copy, the analysis loop keeps appending to its own slice
	return &Result{
		subject:  subject,
		outcome:  outcome,
		steps:    slices.Clone(steps),
		original: original,
	}
}

// Subject returns the identifier of what was analyzed, typically a file
// path. It is carried through unchanged and never inspected.
func (r *Result) Subject() string { return r.subject }

// Outcome returns the classification of this result.
func (r *Result) Outcome() Outcome { return r.outcome }

// Original returns the untransformed input.
func (r *Result) Original() string { return r.original }

// Steps returns the trace of outputs produced by each successive
// application. For a cycle the trace is exactly one period, from the first
// occurrence of the repeated value to the last value before it repeats.
// The returned slice is a copy.
func (r *Result) Steps() []string { return slices.Clone(r.steps) }

// WellBehaved reports whether the transformation was idempotent on the
// first try: it converged and a single application sufficed.
func (r *Result) WellBehaved() bool {
	return r.outcome == Converged && len(r.steps) <= 1
}

// OriginalUnchanged reports whether the original input already satisfies
// the transformation. For a diverging result there is nothing more the
// user can do, so the original is treated as final.
func (r *Result) OriginalUnchanged() bool {
	switch r.outcome {
	case Converged, Cycle:
		return slices.Contains(r.steps, r.original)
	case Diverged:
		return true
	default:
		panic("unknown outcome: " + r.outcome.String())
	}
}

// Resolve selects the final string on a best-effort basis.
//
// A converged result resolves to its fixed point. A cycle resolves to the
// original input when the input is itself a member of the cycle (let the
// user decide), and otherwise to the cycle member with the minimum edit
// distance to the original, which preserves as much of the user's input as
// possible. A diverging result resolves to the original, unchanged.
func (r *Result) Resolve() string {
	switch r.outcome {
	case Converged:
		return r.steps[len(r.steps)-1]
	case Cycle:
		if r.OriginalUnchanged() {
			return r.original
		}
		nearest, _ := comparison.Nearest(r.steps, r.original) // trace is never empty
		return nearest
	case Diverged:
		return r.original
	default:
		panic("unknown outcome: " + r.outcome.String())
	}
}

// Canonical returns the canonical form of this result: the fixed point for
// a converged result, and for a cycle the shortest member with ties broken
// lexicographically. Prefer Resolve; the canonical form ignores the
// original input entirely, which is not transparent to the user. It is
// kept for compatibility with earlier releases.
func (r *Result) Canonical() (string, error) {
	switch r.outcome {
	case Converged:
		return r.steps[len(r.steps)-1], nil
	case Cycle:
		canonical := r.steps[0]
		for _, step := range r.steps[1:] {
			if len(step) < len(canonical) || (len(step) == len(canonical) && step < canonical) {
				canonical = step
			}
		}
		return canonical, nil
	case Diverged:
		return "", ErrUnresolvable
	default:
		panic("unknown outcome: " + r.outcome.String())
	}
}

// Describe returns a short human-readable classification of this result.
func (r *Result) Describe() string {
	switch r.outcome {
	case Converged:
		return fmt.Sprintf("converges after %d steps", len(r.steps))
	case Cycle:
		return fmt.Sprintf("cycles between %d steps", len(r.steps))
	case Diverged:
		return fmt.Sprintf("diverges after %d steps", len(r.steps))
	default:
		panic("unknown outcome: " + r.outcome.String())
	}
}
