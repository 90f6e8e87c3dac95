package viz

import (
	"fmt"
	"math"
	"strconv"

	"govista/domain/dataset"
)

// metricNA is the sentinel returned when no numeric values back a
// non-count reduction.
const metricNA = "N/A"

// CalculateMetric reduces one column to a formatted scalar for a dashboard
// tile. Count ignores the numeric filter and reports the total row count.
func CalculateMetric(table *dataset.Table, column string, op dataset.MetricOp) string {
	if table == nil {
		return metricNA
	}
	if op == dataset.MetricCount {
		return strconv.Itoa(table.RowCount())
	}

	values := make([]float64, 0, len(table.Rows))
	for _, row := range table.Rows {
		if v, ok := row[column].Number(); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return metricNA
	}

	var result float64
	switch op {
	case dataset.MetricSum:
		for _, v := range values {
			result += v
		}
	case dataset.MetricMean:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		result = sum / float64(len(values))
	case dataset.MetricMax:
		result = values[0]
		for _, v := range values {
			if v > result {
				result = v
			}
		}
	case dataset.MetricMin:
		result = values[0]
		for _, v := range values {
			if v < result {
				result = v
			}
		}
	default:
		return metricNA
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		result = 0
	}
	return fmt.Sprintf("%.2f", result)
}
