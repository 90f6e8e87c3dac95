// Package viz shapes a raw row set plus a chart spec into axis-ready
// series: raw/capped points for scatter, frequency aggregation for pie and
// grouped/binned/aggregated/sorted records for bar and line charts. Every
// function is pure: no I/O, no hidden state, inputs never mutated.
package viz

import (
	"fmt"
	"math"
	"sort"

	"govista/domain/dataset"
)

const (
	scatterRowCap      = 500 // truncation, not sampling
	pieSliceCap        = 10
	numericBinTrigger  = 20 // distinct numeric x values before binning
	numericBinCount    = 10
	categoryCapTrigger = 25 // distinct categories before top-N collapsing
	categoryKeep       = 20
	othersLabel        = "Others"
)

// Prepare turns rows plus a chart config into a plot-ready series. Identical
// inputs always yield identical output.
func Prepare(table *dataset.Table, config dataset.ChartConfig) dataset.PreparedSeries {
	if table == nil || config.XAxis == "" {
		return dataset.PreparedSeries{}
	}

	switch config.Kind {
	case dataset.ChartScatter:
		return prepareScatter(table, config)
	case dataset.ChartPie:
		return preparePie(table, config)
	default:
		return prepareAggregated(table, config)
	}
}

// prepareScatter keeps rows where x and every y are finite numbers, capped
// to the first matching rows.
func prepareScatter(table *dataset.Table, config dataset.ChartConfig) dataset.PreparedSeries {
	series := make(dataset.PreparedSeries, 0)
	for _, row := range table.Rows {
		x, ok := row[config.XAxis].Number()
		if !ok {
			continue
		}
		point := dataset.Datum{config.XAxis: x}
		valid := true
		for _, yKey := range config.YAxes {
			y, okY := row[yKey].Number()
			if !okY {
				valid = false
				break
			}
			point[yKey] = y
		}
		if !valid {
			continue
		}
		series = append(series, point)
		if len(series) >= scatterRowCap {
			break
		}
	}
	return series
}

// preparePie counts occurrences of the string-cast x value and keeps the
// largest slices.
func preparePie(table *dataset.Table, config dataset.ChartConfig) dataset.PreparedSeries {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, row := range table.Rows {
		label := row[config.XAxis].Render()
		if label == "" || label == "null" || label == "undefined" {
			continue
		}
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > pieSliceCap {
		order = order[:pieSliceCap]
	}

	series := make(dataset.PreparedSeries, 0, len(order))
	for _, label := range order {
		series = append(series, dataset.Datum{"name": label, "value": counts[label]})
	}
	return series
}

// prepareAggregated is the bar/line path: drop empty x, bin or collapse a
// high-cardinality axis, group, aggregate each requested y and sort labels.
func prepareAggregated(table *dataset.Table, config dataset.ChartConfig) dataset.PreparedSeries {
	kept := make([]dataset.Row, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row[config.XAxis].Render() == "" {
			continue
		}
		kept = append(kept, row)
	}
	if len(kept) == 0 {
		return dataset.PreparedSeries{}
	}

	labels := axisLabels(kept, config.XAxis)

	// Group rows by the (possibly binned or relabeled) x label, preserving
	// first-encounter order until the final sort.
	groups := make(map[string][]dataset.Row)
	groupOrder := make([]string, 0)
	for i, row := range kept {
		label := labels[i]
		if _, ok := groups[label]; !ok {
			groupOrder = append(groupOrder, label)
		}
		groups[label] = append(groups[label], row)
	}

	numericY := make(map[string]bool, len(config.YAxes))
	for _, yKey := range config.YAxes {
		numericY[yKey] = isNumericColumn(kept, yKey)
	}

	series := make(dataset.PreparedSeries, 0, len(groupOrder))
	for _, label := range groupOrder {
		group := groups[label]
		record := dataset.Datum{config.XAxis: label}
		if len(config.YAxes) == 0 {
			record["count"] = len(group)
		}
		for _, yKey := range config.YAxes {
			if numericY[yKey] {
				record[yKey] = groupMean(group, yKey)
			} else {
				record[yKey] = len(group)
			}
		}
		series = append(series, record)
	}

	comparator := newLabelComparator()
	sort.SliceStable(series, func(i, j int) bool {
		a, _ := series[i][config.XAxis].(string)
		b, _ := series[j][config.XAxis].(string)
		return comparator.compare(a, b) < 0
	})
	return series
}

// axisLabels computes the final x label per kept row: equal-width bin
// ranges for a high-cardinality numeric axis, top-N plus "Others" for a
// high-cardinality categorical axis, the rendered value otherwise.
func axisLabels(rows []dataset.Row, xKey string) []string {
	if isNumericColumn(rows, xKey) {
		values := make([]float64, len(rows))
		distinct := make(map[float64]struct{})
		for i, row := range rows {
			n, _ := row[xKey].Number()
			values[i] = n
			distinct[n] = struct{}{}
		}
		if len(distinct) > numericBinTrigger {
			if labels, ok := binLabels(values); ok {
				return labels
			}
		}
		return renderedLabels(rows, xKey)
	}

	labels := renderedLabels(rows, xKey)
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, label := range labels {
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}
	if len(order) <= categoryCapTrigger {
		return labels
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	top := make(map[string]struct{}, categoryKeep)
	for i := 0; i < categoryKeep && i < len(order); i++ {
		top[order[i]] = struct{}{}
	}
	for i, label := range labels {
		if _, ok := top[label]; !ok {
			labels[i] = othersLabel
		}
	}
	return labels
}

func renderedLabels(rows []dataset.Row, key string) []string {
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row[key].Render()
	}
	return labels
}

// binLabels assigns each value to one of ten equal-width buckets spanning
// [min, max], labeled "start - end". Returns false when min==max, where
// binning would degenerate.
func binLabels(values []float64) ([]string, bool) {
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return nil, false
	}

	width := (max - min) / numericBinCount
	labels := make([]string, len(values))
	for i, v := range values {
		idx := int((v - min) / width)
		if idx >= numericBinCount {
			idx = numericBinCount - 1 // clamp the top edge into the last bin
		}
		start := min + width*float64(idx)
		labels[i] = fmt.Sprintf("%s - %s", formatBound(start), formatBound(start+width))
	}
	return labels, true
}

// formatBound prints integers without decimals, everything else with one
// decimal place.
func formatBound(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// isNumericColumn reports whether every present value of the column is a
// finite number and at least one is present.
func isNumericColumn(rows []dataset.Row, key string) bool {
	present := 0
	for _, row := range rows {
		value := row[key]
		if value.IsMissing || value.Type == dataset.ValueTypeMissing {
			continue
		}
		if _, ok := value.Number(); !ok {
			return false
		}
		present++
	}
	return present > 0
}

// groupMean averages the valid numbers of one column within a group,
// rounded to two decimals. Non-finite results are coerced to 0 so nothing
// unrenderable escapes to the chart layer.
func groupMean(group []dataset.Row, key string) float64 {
	sum := 0.0
	n := 0
	for _, row := range group {
		if v, ok := row[key].Number(); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return 0
	}
	return math.Round(mean*100) / 100
}
