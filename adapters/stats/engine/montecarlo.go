package engine

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"govista/domain/dataset"
)

// monteCarloIterations is the fixed number of simulated draws
const monteCarloIterations = 1000

// minMonteCarloSamples is the minimum source values required before the
// Normal approximation is considered meaningful.
const minMonteCarloSamples = 10

// RunMonteCarlo simulates draws from a Normal(mean, std) approximation of
// the column and reports the p10/p50/p90 band of the sorted simulation.
// Returns nil when preconditions fail; absence means "not applicable".
func (e *Engine) RunMonteCarlo(table *dataset.Table, column string) *dataset.MonteCarloResult {
	values := columnNumbers(table, column)
	if len(values) < minMonteCarloSamples {
		return nil
	}

	mean, _ := stats.Mean(stats.Float64Data(values))
	stdDev, _ := stats.StandardDeviationPopulation(stats.Float64Data(values))
	if mean == 0 || stdDev == 0 {
		return nil
	}

	simulated := make([]float64, monteCarloIterations)
	for i := 0; i < monteCarloIterations; i++ {
		simulated[i] = mean + stdDev*e.boxMuller()
	}
	sort.Float64s(simulated)

	// Percentiles are read at floor-indexed ranks, not interpolated.
	return &dataset.MonteCarloResult{
		Column:     column,
		P10:        simulated[int(0.1*monteCarloIterations)],
		P50:        simulated[int(0.5*monteCarloIterations)],
		P90:        simulated[int(0.9*monteCarloIterations)],
		Iterations: monteCarloIterations,
		Mean:       mean,
		StdDev:     stdDev,
	}
}

// boxMuller draws one standard normal sample from two independent uniforms
func (e *Engine) boxMuller() float64 {
	u1 := e.rng.Float64()
	u2 := e.rng.Float64()
	if u1 == 0 {
		u1 = math.SmallestNonzeroFloat64
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
