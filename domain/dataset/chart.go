package dataset

import "govista/domain/core"

// ChartKind selects the data-shaping strategy in the preparer
type ChartKind string

const (
	ChartBar     ChartKind = "bar"
	ChartLine    ChartKind = "line"
	ChartScatter ChartKind = "scatter"
	ChartPie     ChartKind = "pie"
)

// ChartConfig describes one chart on the dashboard. Supplied externally
// (analyst suggestions or user edits); the core treats it as a read-only
// query against the row set.
type ChartConfig struct {
	ID          core.ChartID `json:"id"`
	Title       string       `json:"title"`
	Kind        ChartKind    `json:"kind"`
	XAxis       string       `json:"x_axis"`
	YAxes       []string     `json:"y_axes"`
	Description string       `json:"description,omitempty"`
}

// Datum is one plot-ready record of a prepared series
type Datum map[string]interface{}

// PreparedSeries is the axis-ready output of the visual data preparer.
// Ephemeral: recomputed on every request, a pure function of rows + config.
type PreparedSeries []Datum

// MetricOp is a single-column scalar reduction for dashboard tiles
type MetricOp string

const (
	MetricSum   MetricOp = "sum"
	MetricMean  MetricOp = "mean"
	MetricMax   MetricOp = "max"
	MetricMin   MetricOp = "min"
	MetricCount MetricOp = "count"
)

// MetricSpec describes one metric tile
type MetricSpec struct {
	Title  string   `json:"title"`
	Column string   `json:"column"`
	Op     MetricOp `json:"op"`
}

// ElementKind distinguishes dashboard display elements
type ElementKind string

const (
	ElementChart  ElementKind = "chart"
	ElementMetric ElementKind = "metric"
	ElementText   ElementKind = "text"
)

// DashboardElement is one display element of a dashboard layout. Exactly
// one of Chart, Metric or Text is populated depending on Kind.
type DashboardElement struct {
	ID     string       `json:"id"`
	Kind   ElementKind  `json:"kind"`
	Chart  *ChartConfig `json:"chart,omitempty"`
	Metric *MetricSpec  `json:"metric,omitempty"`
	Text   string       `json:"text,omitempty"`
}

// Dashboard is a named, persistable layout of display elements
type Dashboard struct {
	ID        core.DashboardID   `json:"id"`
	Name      string             `json:"name"`
	DataName  string             `json:"data_name,omitempty"` // source dataset label
	Elements  []DashboardElement `json:"elements"`
	UpdatedAt core.Timestamp     `json:"updated_at,omitempty"`
}
