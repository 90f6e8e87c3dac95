package dataset

// Row maps a column name to its typed cell value. Rows are created once by
// the parser and treated as immutable afterwards.
type Row map[string]Value

// Table is an ingested dataset: a fixed header set plus the rows that
// matched it. DroppedRows counts ragged rows the parser discarded.
type Table struct {
	Headers     []string `json:"headers"`
	Rows        []Row    `json:"rows"`
	DroppedRows int      `json:"dropped_rows"`
}

// RowCount returns the number of accepted rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no usable rows
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Column collects the values of one column in row order
func (t *Table) Column(name string) []Value {
	out := make([]Value, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, row[name])
	}
	return out
}

// ColumnType is the inferred statistical type of a column
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
	TypeText        ColumnType = "text"
	TypeDate        ColumnType = "date"
	TypeUnknown     ColumnType = "unknown"
)

// SemanticRole is a coarse real-world category guessed from the column name
type SemanticRole string

const (
	RoleID         SemanticRole = "id"
	RoleCurrency   SemanticRole = "currency"
	RoleTemporal   SemanticRole = "temporal"
	RoleGeographic SemanticRole = "geographic"
	RoleGeneral    SemanticRole = "general"
)

// NumericSummary holds single-pass summary statistics for a numeric column.
// StdDev is the population standard deviation (divisor n, not n-1).
type NumericSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// DistributionMarkers describe distribution shape for a numeric column.
// Populated only when a deep scan is requested.
type DistributionMarkers struct {
	Skewness   float64 `json:"skewness"`
	Kurtosis   float64 `json:"kurtosis"`
	IsNormal   bool    `json:"is_normal"`
	NormalityP float64 `json:"normality_p"`
}

// ColumnProfile captures the inferred type, semantic role and summary
// statistics of one column. Computed once per dataset, immutable.
type ColumnProfile struct {
	Name         string               `json:"name"`
	Type         ColumnType           `json:"type"`
	Role         SemanticRole         `json:"role"`
	MissingCount int                  `json:"missing_count"`
	UniqueCount  int                  `json:"unique_count"`
	Summary      *NumericSummary      `json:"summary,omitempty"`
	Distribution *DistributionMarkers `json:"distribution,omitempty"`
	Examples     []string             `json:"examples,omitempty"` // up to 5 sample values
}

// IsNumeric reports whether the column was typed numeric
func (p ColumnProfile) IsNumeric() bool {
	return p.Type == TypeNumeric
}

// TrendPoint is one endpoint of a fitted trendline
type TrendPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegressionResult is an ordinary least squares fit for the strongest
// correlated numeric pair, plus a two-point trendline at min/max x.
type RegressionResult struct {
	XColumn   string        `json:"x_column"`
	YColumn   string        `json:"y_column"`
	Slope     float64       `json:"slope"`
	Intercept float64       `json:"intercept"`
	RSquared  float64       `json:"r_squared"`
	Equation  string        `json:"equation"`
	Trendline [2]TrendPoint `json:"trendline"`
}

// MonteCarloResult is a percentile forecast band from parametric resampling
type MonteCarloResult struct {
	Column     string  `json:"column"`
	P10        float64 `json:"p10"`
	P50        float64 `json:"p50"`
	P90        float64 `json:"p90"`
	Iterations int     `json:"iterations"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
}

// AdvancedStats groups the optional model outputs. A nil field means the
// corresponding precondition was not met, never an error.
type AdvancedStats struct {
	Regression *RegressionResult `json:"regression,omitempty"`
	MonteCarlo *MonteCarloResult `json:"monte_carlo,omitempty"`
}

// DatasetStats is the immutable statistics snapshot produced once per
// ingested dataset. Column order matches header order.
type DatasetStats struct {
	RowCount int             `json:"row_count"`
	Columns  []ColumnProfile `json:"columns"`
	Outliers []Row           `json:"outliers"` // capped at 50 rows
	Insights []string        `json:"insights"`
	Advanced *AdvancedStats  `json:"advanced,omitempty"`
}

// ProfileFor finds the profile of a named column
func (s *DatasetStats) ProfileFor(name string) (ColumnProfile, bool) {
	for _, p := range s.Columns {
		if p.Name == name {
			return p, true
		}
	}
	return ColumnProfile{}, false
}
