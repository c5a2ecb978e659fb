package repository

import "time"

// ReadHeaderOptions selects the date header of a sheet.
type ReadHeaderOptions struct {
	Sheet string
}

// ReadColumnOptions selects the append window of one date column.
type ReadColumnOptions struct {
	Sheet  string
	Column int // 1-based
}

// CellOptions addresses a single cell.
type CellOptions struct {
	Sheet  string
	Column int
	Row    int
}

// WriteCellOptions holds the value written into a cell as user input.
type WriteCellOptions struct {
	CellOptions
	Value string
}

// ListEventsOptions bounds an event listing. Limit 0 means no limit.
type ListEventsOptions struct {
	From  time.Time
	To    time.Time
	Limit int
}

type UpdateDescriptionOptions struct {
	EventID     string
	Description string
}
