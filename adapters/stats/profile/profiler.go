// Package profile infers per-column types, semantic roles and summary
// statistics from a typed row table.
package profile

import (
	"time"

	"github.com/montanaflynn/stats"

	"govista/domain/dataset"
)

// maxCategoricalCardinality is the distinct-value ceiling below which a
// non-numeric column is treated as categorical.
const maxCategoricalCardinality = 20

// maxExampleValues caps the sample values kept on a profile
const maxExampleValues = 5

// ProfileColumns scans the table once per column and returns one profile
// per header, in header order.
func ProfileColumns(table *dataset.Table) []dataset.ColumnProfile {
	profiles := make([]dataset.ColumnProfile, 0, len(table.Headers))
	for _, header := range table.Headers {
		profiles = append(profiles, profileColumn(header, table.Rows))
	}
	return profiles
}

func profileColumn(name string, rows []dataset.Row) dataset.ColumnProfile {
	profile := dataset.ColumnProfile{
		Name: name,
		Role: inferRole(name),
	}

	// Distinct values are kept in first-seen order so the date heuristic
	// below samples a deterministic value.
	seen := make(map[string]struct{})
	distinct := make([]string, 0)
	numericValues := make([]float64, 0)
	allNumeric := true
	presentCount := 0

	for _, row := range rows {
		value := row[name]
		if value.IsMissing || value.Type == dataset.ValueTypeMissing {
			profile.MissingCount++
			continue
		}
		presentCount++

		rendered := value.Render()
		if _, ok := seen[rendered]; !ok {
			seen[rendered] = struct{}{}
			distinct = append(distinct, rendered)
		}

		if n, ok := value.Number(); ok {
			numericValues = append(numericValues, n)
		} else {
			allNumeric = false
		}
	}

	profile.UniqueCount = len(distinct)
	for i := 0; i < len(distinct) && i < maxExampleValues; i++ {
		profile.Examples = append(profile.Examples, distinct[i])
	}

	switch {
	case presentCount > 0 && allNumeric:
		profile.Type = dataset.TypeNumeric
		profile.Summary = summarize(numericValues)
	case profile.UniqueCount > 0 && profile.UniqueCount < maxCategoricalCardinality:
		profile.Type = dataset.TypeCategorical
	default:
		profile.Type = dataset.TypeText
		// Date detection samples only the first distinct value. This keeps
		// the classification deterministic and cheap on wide text columns.
		if len(distinct) > 0 && parsesAsDate(distinct[0]) {
			profile.Type = dataset.TypeDate
		}
	}

	return profile
}

// summarize computes min/max/mean and the population standard deviation
// (divisor n, not n-1) in one pass over the collected values.
func summarize(values []float64) *dataset.NumericSummary {
	if len(values) == 0 {
		return nil
	}
	data := stats.Float64Data(values)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviationPopulation(data)
	return &dataset.NumericSummary{Min: min, Max: max, Mean: mean, StdDev: stdDev}
}

// dateFormats are the layouts tried when reclassifying a text column as a
// date column.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2, 2006",
}

func parsesAsDate(s string) bool {
	for _, format := range dateFormats {
		if _, err := time.Parse(format, s); err == nil {
			return true
		}
	}
	return false
}
