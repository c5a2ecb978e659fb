package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	activityHTTP "sppd-activity/internal/activity/delivery/http"
)

// setupActivityDomain registers /api/v1/events and /api/v1/matrix.
func (srv HTTPServer) setupActivityDomain(ctx context.Context, api *gin.RouterGroup) error {
	activityHTTP.RegisterRoutes(api, srv.activityHandler, srv.middleware)

	srv.l.Infof(ctx, "Activity domain registered")
	return nil
}
