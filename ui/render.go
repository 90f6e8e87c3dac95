package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"govista/adapters/viz"
	"govista/domain/dataset"
)

// renderedElement pairs a layout element with its computed payload
type renderedElement struct {
	Element dataset.DashboardElement `json:"element"`
	Series  dataset.PreparedSeries   `json:"series,omitempty"`
	Value   string                   `json:"value,omitempty"`
}

// handleRenderLayout computes every chart series and metric tile of a
// layout in one call. The preparer is pure, so elements fan out across
// goroutines with results kept in layout order.
func (s *Server) handleRenderLayout(c *gin.Context) {
	stored, ok := s.getDataset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	var req struct {
		Elements []dataset.DashboardElement `json:"elements"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid layout"})
		return
	}

	rendered := make([]renderedElement, len(req.Elements))
	group, _ := errgroup.WithContext(c.Request.Context())
	for i, element := range req.Elements {
		i, element := i, element
		group.Go(func() error {
			out := renderedElement{Element: element}
			switch {
			case element.Kind == dataset.ElementChart && element.Chart != nil:
				out.Series = viz.Prepare(stored.Table, *element.Chart)
			case element.Kind == dataset.ElementMetric && element.Metric != nil:
				out.Value = viz.CalculateMetric(stored.Table, element.Metric.Column, element.Metric.Op)
			}
			rendered[i] = out
			return nil
		})
	}
	// Render goroutines never return errors; Wait only synchronizes.
	_ = group.Wait()

	c.JSON(http.StatusOK, gin.H{"elements": rendered})
}
