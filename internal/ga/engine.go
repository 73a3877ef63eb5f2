package ga

import (
	"fmt"

	"tspga/internal/distance"
	"tspga/internal/eval"
	"tspga/internal/tour"
)

// Observer is called after every evaluation pass, generation 0 being the
// initial population and generation Params.Generations the final one.
// Observers must not modify pop.
type Observer func(gen int, pop *Population, stats eval.Stats)

// Option configures an Engine.
type Option func(*Engine)

// WithObserver registers an observer. Observers run in registration order.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// Result is the outcome of a run.
type Result struct {
	Best        tour.Tour
	Length      float64
	Generations int
	History     []eval.Stats // one entry per evaluation pass
}

// Engine runs the generational loop: evaluate, then build a whole new
// population by selection, order crossover and swap mutation, repeated for a
// fixed number of generations.
type Engine struct {
	dist      *distance.Matrix
	params    Params
	rng       Rand
	evaluator *eval.Evaluator
	observers []Observer
}

// NewEngine validates params and returns an engine ready to Run.
func NewEngine(dist *distance.Matrix, params Params, rng Rand, opts ...Option) (*Engine, error) {
	if dist == nil {
		return nil, fmt.Errorf("%w: nil distance model", ErrInvalidParams)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParams)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		dist:      dist,
		params:    params,
		rng:       rng,
		evaluator: eval.NewEvaluator(dist, params.Workers),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Params returns the engine's configuration.
func (e *Engine) Params() Params {
	return e.params
}

// Run executes the configured number of generations and returns the best
// tour of the final population. Without elites the result may be worse than
// the best tour seen in an earlier generation.
func (e *Engine) Run() (*Result, error) {
	pop := NewPopulation(e.params.Population, e.dist.Size(), e.rng)
	res := &Result{
		Generations: e.params.Generations,
		History:     make([]eval.Stats, 0, e.params.Generations+1),
	}

	for gen := 0; gen < e.params.Generations; gen++ {
		res.History = append(res.History, e.evaluate(gen, pop))

		next, err := e.reproduce(pop)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen, err)
		}
		pop.Replace(next)
	}

	final := e.evaluate(e.params.Generations, pop)
	res.History = append(res.History, final)

	best := pop.Agents[final.BestIndex]
	res.Best = best.Tour.Clone()
	res.Length = best.Fitness
	return res, nil
}

// evaluate scores the whole population with fresh fitnesses.
func (e *Engine) evaluate(gen int, pop *Population) eval.Stats {
	fitnesses := e.evaluator.EvaluateAll(pop.Tours())
	pop.SetFitness(fitnesses)

	stats := eval.Summarize(fitnesses)
	stats.Generation = gen
	for _, o := range e.observers {
		o(gen, pop, stats)
	}
	return stats
}

// reproduce creates the next generation via elitism, selection, crossover, and mutation
func (e *Engine) reproduce(pop *Population) ([]*Agent, error) {
	size := e.params.Population
	next := make([]*Agent, 0, size)

	// 1. Keep elites
	next = append(next, pop.Elites(e.params.Elites)...)

	// 2. Fill rest with offspring
	for len(next) < size {
		p1, p2 := SelectParents(pop.Agents, e.rng)

		child, err := CreateChild(p1, p2, e.rng)
		if err != nil {
			return nil, err
		}

		MutateAgent(child, e.params.MutationRate, e.rng)

		if e.params.CheckTours {
			if err := child.Tour.Validate(pop.NumLocations); err != nil {
				return nil, err
			}
		}
		next = append(next, child)
	}

	return next, nil
}
