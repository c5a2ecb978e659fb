package repository

import (
	"context"

	"sppd-activity/internal/model"
)

// MatrixRepository reads and writes the monthly activity sheets.
// Cells are returned raw: float64 serials, strings, or nil.
type MatrixRepository interface {
	ReadHeader(ctx context.Context, opt ReadHeaderOptions) ([]any, error)
	ReadColumn(ctx context.Context, opt ReadColumnOptions) ([]any, error)
	ReadCell(ctx context.Context, opt CellOptions) (string, error)
	WriteCell(ctx context.Context, opt WriteCellOptions) error
}

// EventRepository is the calendar the activities come from.
type EventRepository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.CalendarEvent, error)
	GetEvent(ctx context.Context, id string) (model.CalendarEvent, error)
	UpdateDescription(ctx context.Context, opt UpdateDescriptionOptions) (model.CalendarEvent, error)
}
