package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleSummaryHTML renders the latest analyst summary for a dataset as an
// HTML fragment. The summary is cached on the stored dataset by the
// analyze handler; without one, a short placeholder renders instead.
func (s *Server) handleSummaryHTML(c *gin.Context) {
	stored, ok := s.getDataset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	source := "## " + stored.Name + "\nNo narrative summary yet. Run an analysis first."
	if stored.LastAnalysis != nil && stored.LastAnalysis.Summary != "" {
		source = stored.LastAnalysis.Summary
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", renderMarkdown(source))
}

// renderMarkdown converts analyst markdown to HTML
func renderMarkdown(source string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(source), p, renderer)
}
