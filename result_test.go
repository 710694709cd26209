package fixpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCyclePicksNearestToOriginal(t *testing.T) {
	t.Parallel()

	// "AA" is not a cycle member, so the member with the minimum edit
	// distance to it wins: "Aa" (distance 2) over "Bb" (distance 4).
	f := mapFunc(map[string]string{"AA": "Aa", "Aa": "Bb", "Bb": "Aa"})

	result, err := Check(f, "test.go", "AA")
	require.NoError(t, err)

	assert.Equal(t, Cycle, result.Outcome())
	assert.Equal(t, []string{"Aa", "Bb"}, result.Steps())
	assert.False(t, result.OriginalUnchanged())
	assert.Equal(t, "Aa", result.Resolve())
}

func TestResolveCycleDefersToOriginalMember(t *testing.T) {
	t.Parallel()

	// the original is itself part of the cycle, so the user keeps it
	f := mapFunc(map[string]string{"A": "B", "B": "C", "C": "D", "D": "A"})

	result, err := Check(f, "test.go", "A")
	require.NoError(t, err)

	assert.Equal(t, Cycle, result.Outcome())
	assert.Equal(t, []string{"B", "C", "D", "A"}, result.Steps())
	assert.True(t, result.OriginalUnchanged())
	assert.Equal(t, "A", result.Resolve())
}

func TestCanonicalConverged(t *testing.T) {
	t.Parallel()

	f := mapFunc(map[string]string{"draft": "final"})

	result, err := Check(f, "test.go", "draft")
	require.NoError(t, err)

	canonical, err := result.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "final", canonical)
	assert.Equal(t, result.Resolve(), canonical)
}

func TestCanonicalCycleShortestThenLexicographic(t *testing.T) {
	t.Parallel()

	// cycle members "b", "aa", "a": both "b" and "a" have minimum length,
	// lexicographic order picks "a". Resolve would pick differently, the
	// two policies are intentionally distinct.
	f := mapFunc(map[string]string{"x": "b", "b": "aa", "aa": "a", "a": "b"})

	result, err := Check(f, "test.go", "x")
	require.NoError(t, err)
	require.Equal(t, Cycle, result.Outcome())
	require.Equal(t, []string{"b", "aa", "a"}, result.Steps())

	canonical, err := result.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "a", canonical)
}

func TestCanonicalDiverged(t *testing.T) {
	t.Parallel()

	grow := func(current string) (string, error) {
		return current + "1", nil
	}

	result, err := Check(grow, "test.go", "1", WithMaxIterations(3))
	require.NoError(t, err)
	require.Equal(t, Diverged, result.Outcome())

	_, err = result.Canonical()
	assert.ErrorIs(t, err, ErrUnresolvable)
}

func TestStepsReturnsACopy(t *testing.T) {
	t.Parallel()

	f := mapFunc(map[string]string{"a": "b"})

	result, err := Check(f, "test.go", "a")
	require.NoError(t, err)

	steps := result.Steps()
	steps[0] = "mutated"
	assert.Equal(t, []string{"b"}, result.Steps())
}

func TestResultAccessors(t *testing.T) {
	t.Parallel()

	result, err := Check(identity, "subject-id", "text")
	require.NoError(t, err)

	assert.Equal(t, "subject-id", result.Subject())
	assert.Equal(t, "text", result.Original())
	assert.Equal(t, "converges after 1 steps", result.Describe())
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "converge", Converged.String())
	assert.Equal(t, "cycle", Cycle.String())
	assert.Equal(t, "diverge", Diverged.String())
}
