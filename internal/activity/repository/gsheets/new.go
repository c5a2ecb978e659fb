package gsheets

import (
	"fmt"

	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/matrix"
	pkgSheets "sppd-activity/pkg/gsheets"
	pkgLog "sppd-activity/pkg/log"
)

type implRepository struct {
	client        *pkgSheets.Client
	spreadsheetID string
	layout        matrix.Layout
	l             pkgLog.Logger
}

// New creates a MatrixRepository over one spreadsheet holding the monthly sheets.
func New(client *pkgSheets.Client, spreadsheetID string, layout matrix.Layout, l pkgLog.Logger) repository.MatrixRepository {
	if client == nil {
		panic("activity/repository/gsheets: client is required")
	}
	return &implRepository{
		client:        client,
		spreadsheetID: spreadsheetID,
		layout:        layout,
		l:             l,
	}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("activity/repository/gsheets.%s", method)
}
