package eval

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the fitnesses of one evaluated population
type Stats struct {
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	Worst      float64 `json:"worst"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	BestIndex  int     `json:"best_index"`
}

// Summarize computes statistics over fitnesses. BestIndex is the first index
// holding the minimum. Std is the sample standard deviation, 0 for fewer than
// two values.
func Summarize(fitnesses []float64) Stats {
	if len(fitnesses) == 0 {
		return Stats{BestIndex: -1}
	}

	idx := floats.MinIdx(fitnesses)
	s := Stats{
		Best:      fitnesses[idx],
		Worst:     floats.Max(fitnesses),
		BestIndex: idx,
	}
	if len(fitnesses) < 2 {
		s.Mean = fitnesses[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(fitnesses, nil)
	return s
}
