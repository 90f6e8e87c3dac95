// Package engine composes the statistical pipeline: column profiling,
// correlation-driven model selection, regression, Monte Carlo forecasting
// and outlier detection, aggregated into one immutable snapshot.
package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/montanaflynn/stats"

	"govista/adapters/stats/profile"
	"govista/domain/dataset"
)

// regressionThreshold is the minimum absolute correlation before a
// regression is considered worth fitting.
const regressionThreshold = 0.5

// Engine runs the statistical pipeline. The random source feeds the Monte
// Carlo draws; inject a seeded source for reproducible tests.
type Engine struct {
	rng *rand.Rand
}

// New creates an engine with a time-seeded random source
func New() *Engine {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates an engine with the given random source
func NewWithSource(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src)}
}

// BuildOptions tune optional parts of the snapshot
type BuildOptions struct {
	DeepScan bool // attach distribution markers to numeric columns
}

// BuildStats is the sole public entry point for obtaining a DatasetStats
// from parsed rows. Zero rows short-circuit to an all-empty snapshot
// without invoking any sub-engine.
func (e *Engine) BuildStats(table *dataset.Table, opts BuildOptions) *dataset.DatasetStats {
	if table == nil || table.IsEmpty() {
		return &dataset.DatasetStats{
			RowCount: 0,
			Columns:  []dataset.ColumnProfile{},
			Outliers: []dataset.Row{},
			Insights: []string{},
		}
	}

	profiles := profile.ProfileColumns(table)

	if opts.DeepScan {
		for i := range profiles {
			if profiles[i].IsNumeric() {
				profiles[i].Distribution = profile.AnalyzeDistribution(columnNumbers(table, profiles[i].Name))
			}
		}
	}

	outliers := DetectOutliers(table, profiles)
	selection := selectModels(table, profiles, len(outliers))

	advanced := &dataset.AdvancedStats{}
	if selection.regressionX != "" {
		advanced.Regression = FitRegression(table, selection.regressionX, selection.regressionY)
	}
	if selection.monteCarloColumn != "" {
		advanced.MonteCarlo = e.RunMonteCarlo(table, selection.monteCarloColumn)
	}
	if advanced.Regression == nil && advanced.MonteCarlo == nil {
		advanced = nil
	}

	return &dataset.DatasetStats{
		RowCount: table.RowCount(),
		Columns:  profiles,
		Outliers: outliers,
		Insights: selection.insights,
		Advanced: advanced,
	}
}

// modelSelection carries the selector's decisions: narrative sentences, the
// regression candidate pair and the Monte Carlo candidate column.
type modelSelection struct {
	insights         []string
	regressionX      string
	regressionY      string
	monteCarloColumn string
}

// selectModels scans numeric, non-ID columns for the strongest pairwise
// Pearson correlation, picks the Monte Carlo candidate and assembles the
// narrative insight sentences.
func selectModels(table *dataset.Table, profiles []dataset.ColumnProfile, outlierCount int) modelSelection {
	sel := modelSelection{insights: []string{}}

	candidates := make([]dataset.ColumnProfile, 0)
	for _, p := range profiles {
		if p.IsNumeric() && p.Role != dataset.RoleID {
			candidates = append(candidates, p)
		}
	}

	bestAbs := 0.0
	bestR := 0.0
	bestX, bestY := "", ""
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			x, y := pairedValues(table, candidates[i].Name, candidates[j].Name)
			if len(x) < 2 {
				continue
			}
			r, err := stats.Correlation(stats.Float64Data(x), stats.Float64Data(y))
			if err != nil || math.IsNaN(r) {
				continue
			}
			// Ties keep the first pair found in iteration order.
			if math.Abs(r) > bestAbs {
				bestAbs = math.Abs(r)
				bestR = r
				bestX, bestY = candidates[i].Name, candidates[j].Name
			}
		}
	}

	if bestX != "" {
		sel.insights = append(sel.insights, fmt.Sprintf(
			"%s %s correlation (r=%.2f) between %s and %s.",
			strengthWord(bestAbs), directionWord(bestR), bestR, bestX, bestY))
		if bestAbs > regressionThreshold {
			sel.regressionX, sel.regressionY = bestX, bestY
		}
	}

	sel.monteCarloColumn = pickMonteCarloColumn(candidates)

	for _, p := range profiles {
		if p.Role == dataset.RoleTemporal {
			sel.insights = append(sel.insights, fmt.Sprintf(
				"Column %s looks temporal: consider a time-based forecast of your key measures.", p.Name))
			break
		}
	}
	for _, p := range profiles {
		if p.Role == dataset.RoleCurrency && p.Summary != nil {
			sel.insights = append(sel.insights, fmt.Sprintf(
				"Average %s is %.2f across %d rows.", p.Name, p.Summary.Mean, table.RowCount()))
			break
		}
	}
	if outlierCount > 0 {
		sel.insights = append(sel.insights, fmt.Sprintf(
			"Detected %d rows with outlier values under the 1.5×IQR rule.", outlierCount))
	}

	return sel
}

// pickMonteCarloColumn prefers the first currency-role candidate, then the
// candidate with the largest standard deviation.
func pickMonteCarloColumn(candidates []dataset.ColumnProfile) string {
	for _, p := range candidates {
		if p.Role == dataset.RoleCurrency {
			return p.Name
		}
	}
	best := ""
	bestStd := -1.0
	for _, p := range candidates {
		if p.Summary != nil && p.Summary.StdDev > bestStd {
			bestStd = p.Summary.StdDev
			best = p.Name
		}
	}
	return best
}

func strengthWord(abs float64) string {
	switch {
	case abs > 0.7:
		return "Strong"
	case abs > 0.4:
		return "Moderate"
	default:
		return "Weak"
	}
}

func directionWord(r float64) string {
	if r < 0 {
		return "negative"
	}
	return "positive"
}

// columnNumbers collects the valid finite numbers of one column
func columnNumbers(table *dataset.Table, column string) []float64 {
	out := make([]float64, 0, len(table.Rows))
	for _, row := range table.Rows {
		if n, ok := row[column].Number(); ok {
			out = append(out, n)
		}
	}
	return out
}

// pairedValues collects rows where both columns hold valid finite numbers
func pairedValues(table *dataset.Table, xCol, yCol string) ([]float64, []float64) {
	xs := make([]float64, 0, len(table.Rows))
	ys := make([]float64, 0, len(table.Rows))
	for _, row := range table.Rows {
		x, okX := row[xCol].Number()
		y, okY := row[yCol].Number()
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}
