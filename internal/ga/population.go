package ga

import (
	"math"
	"sort"

	"tspga/internal/tour"
)

// Rand is the random source shared by every operator. *rand.Rand satisfies
// it; seed it to make a run reproducible.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Agent represents an individual in the population
type Agent struct {
	Tour    tour.Tour
	Fitness float64 // closed-cycle length; +Inf until evaluated
}

// Clone creates a deep copy of an agent
func (a *Agent) Clone() *Agent {
	return &Agent{
		Tour:    a.Tour.Clone(),
		Fitness: a.Fitness,
	}
}

// Population manages the collection of agents
type Population struct {
	Agents       []*Agent
	NumLocations int
}

// NewPopulation creates size agents, each holding an independent uniformly
// random tour over n locations.
func NewPopulation(size, n int, rng Rand) *Population {
	p := &Population{
		Agents:       make([]*Agent, size),
		NumLocations: n,
	}

	for i := 0; i < size; i++ {
		p.Agents[i] = &Agent{
			Tour:    tour.Random(n, rng),
			Fitness: math.Inf(1),
		}
	}

	return p
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.Agents)
}

// Tours returns the agents' tours in population order.
func (p *Population) Tours() []tour.Tour {
	out := make([]tour.Tour, len(p.Agents))
	for i, a := range p.Agents {
		out[i] = a.Tour
	}
	return out
}

// SetFitness assigns fitnesses[i] to the i-th agent.
func (p *Population) SetFitness(fitnesses []float64) {
	for i, a := range p.Agents {
		a.Fitness = fitnesses[i]
	}
}

// Best returns the agent with the lowest fitness, the earliest one on ties
func (p *Population) Best() *Agent {
	if len(p.Agents) == 0 {
		return nil
	}
	best := p.Agents[0]
	for _, a := range p.Agents[1:] {
		if a.Fitness < best.Fitness {
			best = a
		}
	}
	return best
}

// Elites returns clones of the k fittest agents, best first. The population
// order is left untouched so selection draws are unaffected.
func (p *Population) Elites(k int) []*Agent {
	if k <= 0 {
		return nil
	}
	ranked := make([]*Agent, len(p.Agents))
	copy(ranked, p.Agents)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness < ranked[j].Fitness
	})
	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]*Agent, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].Clone()
	}
	return out
}

// Replace discards the current agents in favour of next.
func (p *Population) Replace(next []*Agent) {
	p.Agents = next
}
