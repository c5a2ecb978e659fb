package activity

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEventUnscheduled = errors.New("event has no start time")
	ErrSheetNotFound    = errors.New("activity sheet not found")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrEmptyValue       = errors.New("cell value is empty")
)
