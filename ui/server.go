// Package ui is the thin JSON edge over the statistics core: upload a
// dataset, read its profile, ask for chart data and metric tiles, call the
// narrative analyst. It holds the only mutable state in the application
// (the dataset store); everything below it is pure.
package ui

import (
	"sync"

	"github.com/gin-gonic/gin"

	"govista/adapters/stats/engine"
	"govista/domain/core"
	"govista/domain/dataset"
	"govista/internal"
	"govista/internal/config"
	"govista/ports"
)

// Server wires the gin router to the core and the boundary adapters
type Server struct {
	router     *gin.Engine
	config     *config.Config
	engine     *engine.Engine
	analyst    ports.AnalystPort
	editor     ports.DashboardEditorPort
	dashboards ports.DashboardRepository // nil disables persistence
	log        *internal.Logger

	mu    sync.RWMutex
	store map[core.DatasetID]*storedDataset
}

// storedDataset is one ingested dataset held in memory for the session.
// Table and Stats are immutable once stored; re-upload replaces the entry.
// LastAnalysis is the only field updated after ingestion, guarded by the
// server mutex.
type storedDataset struct {
	ID           core.DatasetID
	Name         string
	Table        *dataset.Table
	Stats        *dataset.DatasetStats
	LastAnalysis *dataset.AnalysisResult
}

// NewServer creates the API server. The dashboard repository may be nil
// when no database is configured.
func NewServer(cfg *config.Config, statsEngine *engine.Engine, analyst ports.AnalystPort, editor ports.DashboardEditorPort, dashboards ports.DashboardRepository) *Server {
	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		router:     gin.Default(),
		config:     cfg,
		engine:     statsEngine,
		analyst:    analyst,
		editor:     editor,
		dashboards: dashboards,
		log:        internal.DefaultLogger.With("ui"),
		store:      make(map[core.DatasetID]*storedDataset),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.MaxMultipartMemory = int64(s.config.Data.MaxUploadMB) << 20

	api := s.router.Group("/api")
	{
		api.POST("/datasets", s.handleUpload)
		api.GET("/datasets/:id/stats", s.handleStats)
		api.GET("/datasets/:id/metric", s.handleMetric)
		api.POST("/datasets/:id/charts/prepare", s.handlePrepareChart)
		api.POST("/datasets/:id/analyze", s.handleAnalyze)
		api.POST("/datasets/:id/layout/render", s.handleRenderLayout)
		api.POST("/datasets/:id/layout/edit", s.handleEditLayout)
		api.GET("/datasets/:id/summary.html", s.handleSummaryHTML)

		api.GET("/dashboards", s.handleListDashboards)
		api.POST("/dashboards", s.handleSaveDashboard)
		api.GET("/dashboards/:id", s.handleGetDashboard)
		api.DELETE("/dashboards/:id", s.handleDeleteDashboard)
	}
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	s.log.Info("listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) getDataset(id string) (*storedDataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.store[core.DatasetID(id)]
	return stored, ok
}

func (s *Server) putDataset(stored *storedDataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[stored.ID] = stored
}

func (s *Server) setAnalysis(id core.DatasetID, analysis *dataset.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stored, ok := s.store[id]; ok {
		stored.LastAnalysis = analysis
	}
}
