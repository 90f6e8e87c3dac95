package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"govista/domain/core"
	"govista/domain/dataset"
)

// Dashboard persistence is optional: without a configured database the
// repository is nil and these endpoints answer 503.

func (s *Server) persistenceEnabled(c *gin.Context) bool {
	if s.dashboards == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dashboard persistence is not configured"})
		return false
	}
	return true
}

func (s *Server) handleListDashboards(c *gin.Context) {
	if !s.persistenceEnabled(c) {
		return
	}
	dashboards, err := s.dashboards.List(c.Request.Context())
	if err != nil {
		s.log.Error("list dashboards failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list dashboards"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboards": dashboards})
}

func (s *Server) handleSaveDashboard(c *gin.Context) {
	if !s.persistenceEnabled(c) {
		return
	}

	var dashboard dataset.Dashboard
	if err := c.ShouldBindJSON(&dashboard); err != nil || dashboard.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dashboard"})
		return
	}
	if dashboard.ID == "" {
		dashboard.ID = core.DashboardID(core.NewID())
	}

	if err := s.dashboards.Save(c.Request.Context(), &dashboard); err != nil {
		s.log.Error("save dashboard failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save dashboard"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (s *Server) handleGetDashboard(c *gin.Context) {
	if !s.persistenceEnabled(c) {
		return
	}

	id, err := core.ParseDashboardID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dashboard, err := s.dashboards.Get(c.Request.Context(), id)
	if err != nil {
		s.log.Error("get dashboard failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	if dashboard == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dashboard not found"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (s *Server) handleDeleteDashboard(c *gin.Context) {
	if !s.persistenceEnabled(c) {
		return
	}

	id, err := core.ParseDashboardID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.dashboards.Delete(c.Request.Context(), id); err != nil {
		s.log.Error("delete dashboard failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete dashboard"})
		return
	}
	c.Status(http.StatusNoContent)
}
