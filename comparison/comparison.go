// Package comparison computes the edit distance between two strings and
// selects, from a set of candidates, the one nearest to a reference.
//
// The distance is the minimum number of single-rune insertions and
// deletions needed to turn one string into the other; a substitution
// counts as one deletion plus one insertion. The implementation follows
// "An O(NP) Sequence Comparison Algorithm" by Sun Wu, Udi Manber, and
// Gene Myers, which runs in O(N*P) time where P is the edit distance
// itself. Successive outputs of a near-idempotent formatter are almost
// identical, so P is usually tiny compared to N.
package comparison

import "errors"

// ErrNoCandidates is returned by Nearest when the candidate slice is empty.
var ErrNoCandidates = errors.New("candidates must contain at least one element")

// Distance returns the edit distance between the two strings.
// It is symmetric and zero iff the strings are equal.
func Distance(s1, s2 string) int {
	return newONP([]rune(s1), []rune(s2)).editDistance()
}

// Nearest returns the element of candidates with the minimum edit distance
// to reference. The scan keeps the first minimum found, so for candidate
// sets with distinct distances the winner does not depend on the ordering
// of the slice; exact ties go to the earliest candidate.
func Nearest(candidates []string, reference string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	ref := []rune(reference)
	nearest := candidates[0]
	nearestDistance := newONP([]rune(candidates[0]), ref).editDistance()
	for _, candidate := range candidates[1:] {
		if d := newONP([]rune(candidate), ref).editDistance(); d < nearestDistance {
			nearest = candidate
			nearestDistance = d
		}
	}
	return nearest, nil
}

// onp holds the furthest-point state for a single comparison.
type onp struct {
	a, b  []rune // preliminaries require len(a) <= len(b)
	m, n  int
	delta int   // diagonal n-m contains the sink
	fp    []int // furthest d-points, index range -(m+1)..(n+1)
	off   int   // offset to cope with negative diagonal indexes
}

func newONP(s1, s2 []rune) *onp {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	c := &onp{a: s1, b: s2, m: len(s1), n: len(s2)}
	c.delta = c.n - c.m
	c.fp = make([]int, c.m+c.n+3)
	c.off = c.m + 1
	for i := range c.fp {
		c.fp[i] = -1
	}
	return c
}

// editDistance grows the edit radius p until the furthest point on the
// sink diagonal reaches the end of b, then the distance is delta + 2p.
func (c *onp) editDistance() int {
	p := -1
	for {
		p++
		for k := -p; k <= c.delta-1; k++ {
			c.fp[k+c.off] = c.snake(k)
		}
		for k := c.delta + p; k >= c.delta+1; k-- {
			c.fp[k+c.off] = c.snake(k)
		}
		c.fp[c.delta+c.off] = c.snake(c.delta)
		if c.fp[c.delta+c.off] >= c.n {
			return c.delta + 2*p
		}
	}
}

// snake takes the better of the two neighboring diagonals' furthest points
// and slides down diagonal k through any run of matching runes.
func (c *onp) snake(k int) int {
	y := max(c.fp[k-1+c.off]+1, c.fp[k+1+c.off])
	x := y - k
	for x < c.m && y < c.n && c.a[x] == c.b[y] {
		x++
		y++
	}
	return y
}
