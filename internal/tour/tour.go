package tour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTour is returned when a sequence is not a permutation of {0..n-1}.
var ErrInvalidTour = errors.New("tour: not a permutation")

// Tour is one candidate solution: the order in which locations are visited.
// The cycle closes implicitly from the last location back to the first.
type Tour []int

// Shuffler is the random source needed to build a tour from scratch.
type Shuffler interface {
	Intn(n int) int
}

// Identity returns the tour 0, 1, ..., n-1.
func Identity(n int) Tour {
	t := make(Tour, n)
	for i := range t {
		t[i] = i
	}
	return t
}

// Random returns a uniformly random permutation of n locations
func Random(n int, rng Shuffler) Tour {
	t := Identity(n)
	// Fisher-Yates
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		t[i], t[j] = t[j], t[i]
	}
	return t
}

// Clone makes a copy of a tour
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	dst := make(Tour, len(t))
	copy(dst, t)
	return dst
}

// Validate checks that t visits each of the n locations exactly once.
func (t Tour) Validate(n int) error {
	if len(t) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(t), n)
	}
	seen := make([]bool, n)
	for i, v := range t {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: location %d at position %d out of range", ErrInvalidTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: location %d repeated at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}
	return nil
}

// Cities returns the tour with 1-based location numbers for display.
func (t Tour) Cities() []int {
	out := make([]int, len(t))
	for i, v := range t {
		out[i] = v + 1
	}
	return out
}

// Equal reports whether two tours visit the same locations in the same order.
func (t Tour) Equal(other Tour) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the tour 1-based, e.g. "[1 3 5 4 2]".
func (t Tour) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range t.Cities() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", c)
	}
	b.WriteByte(']')
	return b.String()
}
