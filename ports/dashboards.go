package ports

import (
	"context"

	"govista/domain/core"
	"govista/domain/dataset"
)

// DashboardRepository stores named dashboard layouts. Datasets themselves
// are never persisted; only the chart-config lists that render them.
type DashboardRepository interface {
	Save(ctx context.Context, dashboard *dataset.Dashboard) error
	Get(ctx context.Context, id core.DashboardID) (*dataset.Dashboard, error)
	List(ctx context.Context) ([]dataset.Dashboard, error)
	Delete(ctx context.Context, id core.DashboardID) error
}
