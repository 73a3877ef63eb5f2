package ga

import "tspga/internal/tour"

// Mutate visits every position of t in place and, with probability rate,
// swaps it with a uniformly chosen position (possibly itself).
func Mutate(t tour.Tour, rate float64, rng Rand) {
	for i := range t {
		if rng.Float64() < rate {
			j := rng.Intn(len(t))
			t[i], t[j] = t[j], t[i]
		}
	}
}

// MutateAgent applies mutation to an agent's tour
func MutateAgent(a *Agent, rate float64, rng Rand) {
	Mutate(a.Tour, rate, rng)
}
