package ga

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tspga/internal/tour"
)

func TestNewPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pop := NewPopulation(20, 7, rng)
	require.Equal(t, 20, pop.Size())
	assert.Equal(t, 7, pop.NumLocations)
	for _, a := range pop.Agents {
		require.NoError(t, a.Tour.Validate(7))
		assert.True(t, math.IsInf(a.Fitness, 1))
	}
}

func TestPopulationBestAndElites(t *testing.T) {
	pop := &Population{Agents: agents(9, 3, 7, 3), NumLocations: 3}

	assert.Same(t, pop.Agents[1], pop.Best())

	elites := pop.Elites(2)
	require.Len(t, elites, 2)
	assert.Equal(t, 3.0, elites[0].Fitness)
	assert.Equal(t, 3.0, elites[1].Fitness)
	assert.NotSame(t, pop.Agents[1], elites[0], "elites must be clones")
	// population order untouched
	assert.Equal(t, []float64{9, 3, 7, 3}, []float64{
		pop.Agents[0].Fitness, pop.Agents[1].Fitness, pop.Agents[2].Fitness, pop.Agents[3].Fitness,
	})

	assert.Nil(t, pop.Elites(0))
	assert.Len(t, pop.Elites(10), 4)
	assert.Nil(t, (&Population{}).Best())
}

func TestTournamentSelectPicksLower(t *testing.T) {
	pool := agents(10, 4, 8)
	// i = 0, j draw 0 is shifted past i -> index 1
	rng := &scriptedRand{t: t, ints: []int{0, 0}}
	assert.Same(t, pool[1], TournamentSelect(pool, rng))

	// i = 2, j draw 0 -> index 0; 8 < 10 keeps the first draw
	rng = &scriptedRand{t: t, ints: []int{2, 0}}
	assert.Same(t, pool[2], TournamentSelect(pool, rng))
}

func TestTournamentSelectTieGoesToSecond(t *testing.T) {
	pool := agents(5, 5, 5)
	// i = 0, j draw 0 is shifted to 1 so the indices stay distinct
	rng := &scriptedRand{t: t, ints: []int{0, 0}}
	assert.Same(t, pool[1], TournamentSelect(pool, rng))
}

func TestTournamentSelectDistinctIndices(t *testing.T) {
	pool := agents(1, 2)
	rng := rand.New(rand.NewSource(9))
	// with two agents both must be drawn, so the fitter one always wins
	for i := 0; i < 100; i++ {
		assert.Same(t, pool[0], TournamentSelect(pool, rng))
	}
}

func TestTournamentSelectSmallPools(t *testing.T) {
	assert.Nil(t, TournamentSelect(nil, nil))
	single := agents(3)
	assert.Same(t, single[0], TournamentSelect(single, nil))
}

func TestSelectParentsMayRepeat(t *testing.T) {
	pool := agents(1, 2, 3)
	rng := &scriptedRand{t: t, ints: []int{0, 0, 1, 0}}
	p1, p2 := SelectParents(pool, rng)
	assert.Same(t, pool[0], p1)
	assert.Same(t, pool[0], p2)
}

func TestOrderCrossoverAtKnownChild(t *testing.T) {
	p1 := tour.Tour{0, 1, 2, 3, 4}
	p2 := tour.Tour{4, 3, 2, 1, 0}
	child, err := OrderCrossoverAt(p1, p2, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, tour.Tour{4, 1, 2, 3, 0}, child)

	// parents are untouched
	assert.Equal(t, tour.Tour{0, 1, 2, 3, 4}, p1)
	assert.Equal(t, tour.Tour{4, 3, 2, 1, 0}, p2)
}

func TestOrderCrossoverAtEmptySegment(t *testing.T) {
	p1 := tour.Tour{0, 1, 2, 3}
	p2 := tour.Tour{2, 0, 3, 1}
	child, err := OrderCrossoverAt(p1, p2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, p2, child)
}

func TestOrderCrossoverAtAllCuts(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(9)
		p1 := tour.Random(n, rng)
		p2 := tour.Random(n, rng)
		for a := 0; a <= n; a++ {
			for b := a; b <= n; b++ {
				child, err := OrderCrossoverAt(p1, p2, a, b)
				require.NoError(t, err)
				require.NoError(t, child.Validate(n))

				inSegment := make(map[int]bool)
				for i := a; i < b; i++ {
					require.Equal(t, p1[i], child[i], "segment position %d", i)
					inSegment[p1[i]] = true
				}

				var rest []int
				for i := 0; i < n; i++ {
					if i < a || i >= b {
						rest = append(rest, child[i])
					}
				}
				var want []int
				for _, v := range p2 {
					if !inSegment[v] {
						want = append(want, v)
					}
				}
				require.Equal(t, want, rest, "p1=%v p2=%v a=%d b=%d", p1, p2, a, b)
			}
		}
	}
}

func TestOrderCrossoverAtRejects(t *testing.T) {
	good := tour.Tour{0, 1, 2}
	tests := []struct {
		name   string
		p1, p2 tour.Tour
		a, b   int
	}{
		{"length mismatch", good, tour.Tour{0, 1}, 0, 1},
		{"duplicate in first", tour.Tour{0, 0, 2}, good, 0, 1},
		{"duplicate in second", good, tour.Tour{1, 1, 2}, 0, 1},
		{"out of range", good, tour.Tour{0, 1, 3}, 0, 1},
		{"negative cut", good, good, -1, 1},
		{"cut past end", good, good, 1, 4},
		{"reversed cuts", good, good, 2, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := OrderCrossoverAt(tc.p1, tc.p2, tc.a, tc.b)
			assert.ErrorIs(t, err, ErrParentMismatch)
			assert.ErrorIs(t, err, tour.ErrInvalidTour)
		})
	}
}

func TestOrderCrossoverDrawsDistinctSortedCuts(t *testing.T) {
	p1 := tour.Tour{0, 1, 2, 3, 4}
	p2 := tour.Tour{4, 3, 2, 1, 0}
	// a = 3, b draw 1 -> cuts sorted to [1, 3)
	rng := &scriptedRand{t: t, ints: []int{3, 1}}
	child, err := OrderCrossover(p1, p2, rng)
	require.NoError(t, err)
	assert.Equal(t, tour.Tour{4, 1, 2, 3, 0}, child)

	// a = 1, b draw 1 is shifted to 2 -> [1, 2)
	rng = &scriptedRand{t: t, ints: []int{1, 1}}
	child, err = OrderCrossover(p1, p2, rng)
	require.NoError(t, err)
	assert.Equal(t, tour.Tour{4, 1, 3, 2, 0}, child)
}

func TestOrderCrossoverRandomIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	for i := 0; i < 500; i++ {
		n := 2 + rng.Intn(15)
		child, err := OrderCrossover(tour.Random(n, rng), tour.Random(n, rng), rng)
		require.NoError(t, err)
		require.NoError(t, child.Validate(n))
	}
}

func TestOrderCrossoverTooShort(t *testing.T) {
	_, err := OrderCrossover(tour.Tour{0}, tour.Tour{0}, nil)
	assert.ErrorIs(t, err, ErrParentMismatch)
}

func TestCreateChildIsUnevaluated(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := &Agent{Tour: tour.Tour{0, 1, 2, 3}, Fitness: 4}
	child, err := CreateChild(p, p.Clone(), rng)
	require.NoError(t, err)
	assert.Equal(t, tour.Tour{0, 1, 2, 3}, child.Tour)
	assert.True(t, math.IsInf(child.Fitness, 1))
}

func TestMutateRateZeroIsNoOp(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		tr := tour.Random(8, rng)
		before := tr.Clone()
		Mutate(tr, 0, rng)
		assert.Equal(t, before, tr)
	}
}

func TestMutateScripted(t *testing.T) {
	tr := tour.Tour{10, 11, 12}
	// only position 1 fires and swaps with position 0
	rng := &scriptedRand{t: t, floats: []float64{0.5, 0.0, 0.9}, ints: []int{0}}
	Mutate(tr, 0.1, rng)
	assert.Equal(t, tour.Tour{11, 10, 12}, tr)
}

func TestMutateSelfSwapIsNoOp(t *testing.T) {
	tr := tour.Tour{0, 1, 2}
	rng := &scriptedRand{t: t, floats: []float64{0, 0, 0}, ints: []int{0, 1, 2}}
	Mutate(tr, 1, rng)
	assert.Equal(t, tour.Tour{0, 1, 2}, tr)
}

func TestMutatePreservesPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, rate := range []float64{0.01, 0.3, 1} {
		for i := 0; i < 200; i++ {
			tr := tour.Random(10, rng)
			Mutate(tr, rate, rng)
			require.NoError(t, tr.Validate(10))
		}
	}
}
