package httpserver

import (
	"net/http"
	"time"

	"sppd-activity/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "SPPD activity matrix API"
	HealthVersion = "1.0.0"
	ServiceName   = "sppd-activity"
)

// Backends describes the Google resources the activity routes work against.
type Backends struct {
	SpreadsheetID string
	CalendarID    string
	Timezone      string
	AuthEnabled   bool
}

func (b Backends) ready() bool {
	return b.SpreadsheetID != "" && b.CalendarID != ""
}

func (srv HTTPServer) identity(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	body := srv.identity("healthy")
	body["uptime_seconds"] = int64(time.Since(srv.startedAt).Seconds())
	response.OK(c, body)
}

// readyCheck reports whether a spreadsheet and a calendar are configured.
// @Summary Readiness Check
// @Description Ready once the activity matrix spreadsheet and the calendar are configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Matrix backends not configured"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	b := srv.backends
	body := srv.identity("ready")
	body["spreadsheet_configured"] = b.SpreadsheetID != ""
	body["calendar_configured"] = b.CalendarID != ""
	body["timezone"] = b.Timezone
	body["auth_enabled"] = b.AuthEnabled

	if !b.ready() {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "matrix backends not configured",
			Data:      body,
		})
		return
	}
	response.OK(c, body)
}

// liveCheck
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.identity("alive"))
}
