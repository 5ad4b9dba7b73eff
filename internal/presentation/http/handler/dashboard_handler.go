package handler

import (
	"io"

	"github.com/ayumu-dev/regi-api/internal/application/service"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
	stream           *service.ReportStream
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, stream *service.ReportStream) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		stream:           stream,
	}
}

// Stats handles fetching the dashboard snapshot
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// Stream pushes dashboard snapshots over server-sent events. An initial
// snapshot is sent immediately, then a fresh one after every committed
// checkout or order change.
func (h *DashboardHandler) Stream(c *gin.Context) {
	ch, cancel := h.stream.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	if stats, err := h.dashboardService.GetStats(c.Request.Context()); err == nil {
		c.SSEvent("stats", stats)
		c.Writer.Flush()
	}

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case stats, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("stats", stats)
			return true
		}
	})
}
