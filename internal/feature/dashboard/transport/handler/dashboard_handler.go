// Package handler serves the dashboard page.
package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshal31718/enma-quant-trading-platform/internal/feature/dashboard/usecase"
)

// DashboardView renders the dashboard page and reports its state.
type DashboardView interface {
	View(w io.Writer) error
	State() usecase.State
}

// DashboardHandler handles requests for the dashboard page.
type DashboardHandler struct {
	view DashboardView
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(view DashboardView) *DashboardHandler {
	return &DashboardHandler{view: view}
}

// Index writes the dashboard HTML.
//
// GET /
func (h *DashboardHandler) Index(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.view.View(&buf); err != nil {
		slog.Error("failed to render dashboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render dashboard"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// State returns the loader and chart state as JSON.
//
// GET /state
func (h *DashboardHandler) State(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, h.view.State())
}
