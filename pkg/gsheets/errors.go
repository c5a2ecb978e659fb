package gsheets

import "errors"

var (
	// ErrSheetNotFound is returned when the range names a sheet tab that does not exist.
	ErrSheetNotFound       = errors.New("sheet not found")
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
)
