package ga

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tspga/internal/distance"
	"tspga/internal/tour"
)

// scriptedRand replays fixed draws so operator decisions can be asserted exactly.
type scriptedRand struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	require.NotEmpty(r.t, r.ints, "unexpected Intn(%d)", n)
	v := r.ints[0]
	r.ints = r.ints[1:]
	require.True(r.t, v >= 0 && v < n, "scripted Intn value %d outside [0, %d)", v, n)
	return v
}

func (r *scriptedRand) Float64() float64 {
	require.NotEmpty(r.t, r.floats, "unexpected Float64()")
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func referenceMatrix(t *testing.T) *distance.Matrix {
	t.Helper()
	m, err := distance.New(distance.ReferenceTable())
	require.NoError(t, err)
	return m
}

func agents(fitnesses ...float64) []*Agent {
	out := make([]*Agent, len(fitnesses))
	for i, f := range fitnesses {
		out[i] = &Agent{Tour: tour.Identity(3), Fitness: f}
	}
	return out
}
