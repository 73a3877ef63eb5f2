package eval

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"tspga/internal/distance"
	"tspga/internal/tour"
)

// Evaluator scores tours against a distance model
type Evaluator struct {
	dist    *distance.Matrix
	workers int
}

// NewEvaluator creates a new evaluator. workers <= 0 uses one worker per CPU;
// workers == 1 scores tours serially on the calling goroutine.
func NewEvaluator(dist *distance.Matrix, workers int) *Evaluator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Evaluator{
		dist:    dist,
		workers: workers,
	}
}

// Workers returns the number of goroutines used by EvaluateAll.
func (e *Evaluator) Workers() int {
	return e.workers
}

// Fitness returns the closed-cycle length of t. Lower is better.
func (e *Evaluator) Fitness(t tour.Tour) float64 {
	return Length(e.dist, t)
}

// EvaluateAll scores every tour. out[i] is the fitness of tours[i] regardless
// of how many workers ran.
func (e *Evaluator) EvaluateAll(tours []tour.Tour) []float64 {
	out := make([]float64, len(tours))
	if e.workers == 1 || len(tours) < 2 {
		for i, t := range tours {
			out[i] = e.Fitness(t)
		}
		return out
	}

	p := pool.New().WithMaxGoroutines(e.workers)
	for i, t := range tours {
		i, t := i, t
		p.Go(func() {
			out[i] = e.Fitness(t)
		})
	}
	p.Wait()
	return out
}

// Length sums cost(t[k], t[k+1]) over the tour plus the closing edge
// cost(t[n-1], t[0]). t must be a permutation of the model's locations.
func Length(dist *distance.Matrix, t tour.Tour) float64 {
	n := len(t)
	if n == 0 {
		return 0
	}
	var total float64
	for k := 0; k < n-1; k++ {
		total += dist.Cost(t[k], t[k+1])
	}
	total += dist.Cost(t[n-1], t[0])
	return total
}
