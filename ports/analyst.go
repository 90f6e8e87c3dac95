package ports

import (
	"context"

	"govista/domain/dataset"
)

// AnalystPort is the narrative-generation collaborator: it consumes a
// statistics snapshot plus a small row sample and returns a structured
// analysis. Implementations must degrade to a fixed fallback rather than
// fail; the statistics pipeline is never recomputed on analyst failure.
type AnalystPort interface {
	Analyze(ctx context.Context, stats *dataset.DatasetStats, sample []dataset.Row, opts dataset.AnalysisOptions) (*dataset.AnalysisResult, error)
}

// DashboardEditorPort is the dashboard-edit collaborator: a natural
// language command plus the current layout yields an updated layout. The
// core never parses natural language itself.
type DashboardEditorPort interface {
	Edit(ctx context.Context, command string, layout []dataset.DashboardElement) ([]dataset.DashboardElement, error)
}
