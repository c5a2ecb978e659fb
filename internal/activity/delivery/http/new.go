package http

import (
	"github.com/gin-gonic/gin"

	"sppd-activity/internal/activity"
	"sppd-activity/pkg/datemath"
	"sppd-activity/pkg/log"
)

// Handler is the public interface for the activity HTTP delivery layer.
type Handler interface {
	ListEvents(c *gin.Context)
	DetailEvent(c *gin.Context)
	UpdateDisposition(c *gin.Context)
	RecordEvent(c *gin.Context)
	PlanAppend(c *gin.Context)
	CommitAppend(c *gin.Context)
	DayCells(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       activity.UseCase
	dateMath *datemath.Parser
}

// New creates a new HTTP handler for the activity domain.
func New(l log.Logger, uc activity.UseCase, dateMath *datemath.Parser) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
	}
}
