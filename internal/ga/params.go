package ga

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// ErrInvalidParams wraps every configuration error reported by NewEngine.
var ErrInvalidParams = errors.New("ga: invalid parameters")

// Params is the immutable configuration of one run.
type Params struct {
	Population   int
	MutationRate float64
	Generations  int

	// Elites is the number of best agents copied unchanged into the next
	// generation. 0 means full generational replacement.
	Elites int

	// Workers bounds concurrent fitness evaluation; 1 is serial and 0 uses
	// one worker per CPU.
	Workers int

	// CheckTours validates every child before it joins the population.
	CheckTours bool
}

// DefaultParams returns the classic small-instance settings: four tours,
// 1% mutation, 100 generations, no elitism.
func DefaultParams() Params {
	return Params{
		Population:   4,
		MutationRate: 0.01,
		Generations:  100,
		Workers:      1,
	}
}

// Validate reports every parameter that would make a run ill-defined.
func (p Params) Validate() error {
	var err error
	if p.Population < 2 {
		err = multierr.Append(err, fmt.Errorf("%w: population %d, need at least 2", ErrInvalidParams, p.Population))
	}
	if math.IsNaN(p.MutationRate) || p.MutationRate < 0 || p.MutationRate > 1 {
		err = multierr.Append(err, fmt.Errorf("%w: mutation rate %v outside [0, 1]", ErrInvalidParams, p.MutationRate))
	}
	if p.Generations < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: generations %d, need at least 1", ErrInvalidParams, p.Generations))
	}
	if p.Elites < 0 || (p.Population >= 2 && p.Elites >= p.Population) {
		err = multierr.Append(err, fmt.Errorf("%w: elites %d must be in [0, population)", ErrInvalidParams, p.Elites))
	}
	if p.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: workers %d is negative", ErrInvalidParams, p.Workers))
	}
	return err
}
