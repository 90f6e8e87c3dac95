package engine

import (
	"sort"

	"govista/domain/dataset"
)

// maxOutlierRows caps the returned set; a display limit, not a statistical
// one.
const maxOutlierRows = 50

// DetectOutliers flags rows carrying a value outside the 1.5×IQR bounds of
// any numeric, non-ID column. Rows flagged by several columns appear once,
// in first-encountered order.
func DetectOutliers(table *dataset.Table, profiles []dataset.ColumnProfile) []dataset.Row {
	flagged := make([]dataset.Row, 0)
	seen := make(map[int]struct{})

	for _, p := range profiles {
		if !p.IsNumeric() || p.Role == dataset.RoleID {
			continue
		}

		indices := make([]int, 0, len(table.Rows))
		values := make([]float64, 0, len(table.Rows))
		for i, row := range table.Rows {
			if n, ok := row[p.Name].Number(); ok {
				indices = append(indices, i)
				values = append(values, n)
			}
		}
		if len(values) == 0 {
			continue
		}

		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		// Quartiles at floor-indexed positions, matching the percentile
		// convention used elsewhere in the pipeline.
		q1 := sorted[int(float64(len(sorted))*0.25)]
		q3 := sorted[int(float64(len(sorted))*0.75)]
		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr

		for k, v := range values {
			if v < lower || v > upper {
				idx := indices[k]
				if _, dup := seen[idx]; dup {
					continue
				}
				seen[idx] = struct{}{}
				flagged = append(flagged, table.Rows[idx])
				if len(flagged) >= maxOutlierRows {
					return flagged
				}
			}
		}
	}

	return flagged
}
