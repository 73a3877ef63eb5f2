package ga

import (
	"fmt"
	"math"

	"tspga/internal/tour"
)

// ErrParentMismatch is returned when crossover parents are not permutations
// of the same locations or the cut points fall outside them.
var ErrParentMismatch = fmt.Errorf("%w: crossover parents", tour.ErrInvalidTour)

// OrderCrossover draws two distinct cut points a < b in [0, n) and applies
// OrderCrossoverAt.
func OrderCrossover(p1, p2 tour.Tour, rng Rand) (tour.Tour, error) {
	n := len(p1)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 locations, got %d", ErrParentMismatch, n)
	}

	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	if a > b {
		a, b = b, a
	}
	return OrderCrossoverAt(p1, p2, a, b)
}

// OrderCrossoverAt builds a child that keeps p1[a:b] in place and fills the
// other positions, left to right, with the locations of p2 not already used,
// in p2's order. a == b copies nothing from p1.
func OrderCrossoverAt(p1, p2 tour.Tour, a, b int) (tour.Tour, error) {
	n := len(p1)
	if len(p2) != n {
		return nil, fmt.Errorf("%w: lengths %d and %d", ErrParentMismatch, n, len(p2))
	}
	if a < 0 || b > n || a > b {
		return nil, fmt.Errorf("%w: cut points [%d, %d) outside [0, %d]", ErrParentMismatch, a, b, n)
	}
	if err := p1.Validate(n); err != nil {
		return nil, fmt.Errorf("%w: first parent: %v", ErrParentMismatch, err)
	}
	if err := p2.Validate(n); err != nil {
		return nil, fmt.Errorf("%w: second parent: %v", ErrParentMismatch, err)
	}

	child := make(tour.Tour, n)
	used := make([]bool, n)
	copy(child[a:b], p1[a:b])
	for _, v := range p1[a:b] {
		used[v] = true
	}

	k := 0
	for i := 0; i < n; i++ {
		if i >= a && i < b {
			continue
		}
		for used[p2[k]] {
			k++
		}
		child[i] = p2[k]
		used[p2[k]] = true
		k++
	}
	return child, nil
}

// CreateChild creates a single unevaluated child from two parents using
// order crossover
func CreateChild(p1, p2 *Agent, rng Rand) (*Agent, error) {
	t, err := OrderCrossover(p1.Tour, p2.Tour, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{Tour: t, Fitness: math.Inf(1)}, nil
}
