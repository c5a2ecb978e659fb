package gcal

import (
	"fmt"

	"sppd-activity/internal/activity/repository"
	"sppd-activity/pkg/gcalendar"
	pkgLog "sppd-activity/pkg/log"
)

type implRepository struct {
	client     *gcalendar.Client
	calendarID string
	l          pkgLog.Logger
}

// New creates an EventRepository over a single calendar.
func New(client *gcalendar.Client, calendarID string, l pkgLog.Logger) repository.EventRepository {
	if client == nil {
		panic("activity/repository/gcal: client is required")
	}
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		l:          l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("activity/repository/gcal.%s", method)
}
