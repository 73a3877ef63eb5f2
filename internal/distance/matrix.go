package distance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"tspga/internal/tour"
)

// ErrInvalidTable is the parent of every table construction error.
var ErrInvalidTable = errors.New("distance: invalid table")

var (
	ErrTooFewLocations = fmt.Errorf("%w: need at least 2 locations", ErrInvalidTable)
	ErrNonSquare       = fmt.Errorf("%w: table is not square", ErrInvalidTable)
	ErrNegativeCost    = fmt.Errorf("%w: negative cost", ErrInvalidTable)
	ErrInvalidCost     = fmt.Errorf("%w: cost is NaN or infinite", ErrInvalidTable)
)

// Matrix is an immutable table of travel costs between N locations.
// Cost(i, j) need not equal Cost(j, i).
type Matrix struct {
	costs *mat.Dense
	n     int
	names []string
}

// New copies table into a Matrix after checking it is a complete,
// square, non-negative cost table over at least two locations.
func New(table [][]float64) (*Matrix, error) {
	n := len(table)
	if n < 2 {
		return nil, ErrTooFewLocations
	}
	data := make([]float64, 0, n*n)
	for i, row := range table {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("%w: cost(%d, %d) = %v", ErrInvalidCost, i, j, c)
			}
			if c < 0 {
				return nil, fmt.Errorf("%w: cost(%d, %d) = %v", ErrNegativeCost, i, j, c)
			}
		}
		data = append(data, row...)
	}
	return &Matrix{costs: mat.NewDense(n, n, data), n: n}, nil
}

// MustNew is like New but panics on an invalid table. Intended for fixtures.
func MustNew(table [][]float64) *Matrix {
	m, err := New(table)
	if err != nil {
		panic(err)
	}
	return m
}

// Size returns the number of locations.
func (m *Matrix) Size() int {
	return m.n
}

// Cost returns the travel cost from location i to location j.
func (m *Matrix) Cost(i, j int) float64 {
	return m.costs.At(i, j)
}

// Row returns a copy of the costs leaving location i.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.costs)
}

// Table returns a copy of the full cost table.
func (m *Matrix) Table() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Name returns the display name of location i: its configured name when one
// exists, otherwise its 1-based number.
func (m *Matrix) Name(i int) string {
	if i < len(m.names) && m.names[i] != "" {
		return m.names[i]
	}
	return fmt.Sprintf("%d", i+1)
}

// Leg is one edge of a closed tour.
type Leg struct {
	From  int     `json:"from"`
	To    int     `json:"to"`
	Cost  float64 `json:"cost"`
	Total float64 `json:"total"`
}

// Legs breaks a tour down into its edges, including the closing edge back to
// the start. Total is the running length after each leg.
func (m *Matrix) Legs(t tour.Tour) []Leg {
	if len(t) == 0 {
		return nil
	}
	legs := make([]Leg, len(t))
	var total float64
	for k := range t {
		from, to := t[k], t[(k+1)%len(t)]
		c := m.Cost(from, to)
		total += c
		legs[k] = Leg{From: from, To: to, Cost: c, Total: total}
	}
	return legs
}
