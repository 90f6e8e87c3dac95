package ui

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"govista/adapters/ingest"
	"govista/adapters/stats/engine"
	"govista/adapters/viz"
	"govista/domain/core"
	"govista/domain/dataset"
	"govista/internal/errors"
)

// handleUpload ingests a CSV or Excel upload, builds the statistics
// snapshot and stores both for the session. An empty parse is a terminal
// ingestion failure; no partial dashboard is built from it.
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file upload"})
		return
	}
	defer file.Close()

	deepScan := c.Query("deep_scan") == "true"

	var table *dataset.Table
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx", ".xls":
		table, err = ingest.ReadWorkbook(file)
		if err != nil {
			s.log.Warn("workbook read failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	default:
		raw, readErr := io.ReadAll(file)
		if readErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file upload"})
			return
		}
		table = ingest.ParseCSV(string(raw))
	}

	if table.IsEmpty() {
		appErr := errors.IngestionEmpty()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}

	stored := &storedDataset{
		ID:    core.DatasetID(core.NewID()),
		Name:  fileHeader.Filename,
		Table: table,
		Stats: s.engine.BuildStats(table, engine.BuildOptions{DeepScan: deepScan}),
	}
	s.putDataset(stored)
	s.log.Info("ingested %s: %d rows, %d dropped", stored.Name, table.RowCount(), table.DroppedRows)

	c.JSON(http.StatusCreated, gin.H{
		"id":           stored.ID,
		"name":         stored.Name,
		"row_count":    table.RowCount(),
		"dropped_rows": table.DroppedRows,
		"stats":        stored.Stats,
	})
}

func (s *Server) handleStats(c *gin.Context) {
	stored, ok := s.getDataset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	c.JSON(http.StatusOK, stored.Stats)
}

// handleMetric computes one scalar tile: ?column=price&op=mean
func (s *Server) handleMetric(c *gin.Context) {
	stored, ok := s.getDataset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	column := c.Query("column")
	op := dataset.MetricOp(c.Query("op"))
	switch op {
	case dataset.MetricSum, dataset.MetricMean, dataset.MetricMax, dataset.MetricMin, dataset.MetricCount:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown metric op"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"column": column,
		"op":     op,
		"value":  viz.CalculateMetric(stored.Table, column, op),
	})
}

// handlePrepareChart shapes rows for one chart config
func (s *Server) handlePrepareChart(c *gin.Context) {
	stored, ok := s.getDataset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	var config dataset.ChartConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart config"})
		return
	}
	if config.XAxis == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chart config requires an x axis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"config": config,
		"series": viz.Prepare(stored.Table, config),
	})
}

// handleAnalyze forwards the snapshot and a small row sample to the
// narrative analyst. The analyst degrades instead of failing, so this
// handler always returns 200 with a possibly degraded result.
func (s *Server) handleAnalyze(c *gin.Context) {
	stored, ok := s.getDataset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	var opts dataset.AnalysisOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid analysis options"})
		return
	}

	sampleSize := s.config.Data.SampleRows
	if sampleSize > stored.Table.RowCount() {
		sampleSize = stored.Table.RowCount()
	}
	sample := stored.Table.Rows[:sampleSize]

	result, err := s.analyst.Analyze(c.Request.Context(), stored.Stats, sample, opts)
	if err != nil {
		// Analysts are expected to degrade, not error; treat this as a
		// boundary bug but still answer.
		s.log.Error("analyst returned error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis unavailable"})
		return
	}
	s.setAnalysis(stored.ID, result)
	c.JSON(http.StatusOK, result)
}

// handleEditLayout forwards a natural-language command and the current
// layout to the dashboard-edit collaborator.
func (s *Server) handleEditLayout(c *gin.Context) {
	if _, ok := s.getDataset(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	var req struct {
		Command string                     `json:"command"`
		Layout  []dataset.DashboardElement `json:"layout"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Command) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid edit request"})
		return
	}

	updated, err := s.editor.Edit(c.Request.Context(), req.Command, req.Layout)
	if err != nil {
		s.log.Warn("layout edit failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "edit unavailable", "code": errors.CodeExternalService})
		return
	}
	c.JSON(http.StatusOK, gin.H{"layout": updated})
}
