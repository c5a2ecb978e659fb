package matrix

import (
	"fmt"
	"strings"
	"time"
)

// Layout describes where the date header and the append window of an
// activity sheet live. Rows and columns are 1-based, as in A1 notation.
type Layout struct {
	HeaderRow    int
	FirstColumn  int
	LastColumn   int
	FirstDataRow int
	LastDataRow  int

	// Epoch is the calendar day of serial 0.
	Epoch    time.Time
	Location *time.Location
}

// DefaultLayout returns the reference layout: dates in E17:AI17, entries in rows 18..52.
func DefaultLayout(loc *time.Location) Layout {
	if loc == nil {
		loc = time.UTC
	}
	return Layout{
		HeaderRow:    17,
		FirstColumn:  5,
		LastColumn:   35,
		FirstDataRow: 18,
		LastDataRow:  52,
		Epoch:        time.Date(1899, time.December, 30, 0, 0, 0, 0, loc),
		Location:     loc,
	}
}

// Validate reports whether the layout is usable.
func (l Layout) Validate() error {
	switch {
	case l.Location == nil:
		return fmt.Errorf("%w: location is required", ErrInvalidLayout)
	case l.Epoch.IsZero():
		return fmt.Errorf("%w: epoch is required", ErrInvalidLayout)
	case l.HeaderRow < 1 || l.FirstColumn < 1:
		return fmt.Errorf("%w: header row and first column must be positive", ErrInvalidLayout)
	case l.LastColumn < l.FirstColumn:
		return fmt.Errorf("%w: last column %d before first column %d", ErrInvalidLayout, l.LastColumn, l.FirstColumn)
	case l.FirstDataRow <= l.HeaderRow:
		return fmt.Errorf("%w: data rows must start below header row %d", ErrInvalidLayout, l.HeaderRow)
	case l.LastDataRow < l.FirstDataRow:
		return fmt.Errorf("%w: last data row %d before first data row %d", ErrInvalidLayout, l.LastDataRow, l.FirstDataRow)
	}
	return nil
}

// Width is the number of date columns in the header.
func (l Layout) Width() int {
	return l.LastColumn - l.FirstColumn + 1
}

// Window is the number of data rows under each date column.
func (l Layout) Window() int {
	return l.LastDataRow - l.FirstDataRow + 1
}

// HasColumn reports whether col is one of the date columns.
func (l Layout) HasColumn(col int) bool {
	return col >= l.FirstColumn && col <= l.LastColumn
}

// HasDataRow reports whether row lies inside the append window.
func (l Layout) HasDataRow(row int) bool {
	return row >= l.FirstDataRow && row <= l.LastDataRow
}

// HeaderRange returns the A1 range of the date header, e.g. 'Giat_Agustus_24'!E17:AI17.
func (l Layout) HeaderRange(sheet string) string {
	return fmt.Sprintf("%s!%s%d:%s%d", QuoteSheet(sheet),
		ColumnLetters(l.FirstColumn), l.HeaderRow,
		ColumnLetters(l.LastColumn), l.HeaderRow)
}

// ColumnRange returns the A1 range of the append window of col, e.g. 'Giat_Agustus_24'!H18:H52.
func (l Layout) ColumnRange(sheet string, col int) string {
	letters := ColumnLetters(col)
	return fmt.Sprintf("%s!%s%d:%s%d", QuoteSheet(sheet), letters, l.FirstDataRow, letters, l.LastDataRow)
}

// CellRange returns the A1 reference of a single cell on sheet.
func (l Layout) CellRange(sheet string, col, row int) string {
	return fmt.Sprintf("%s!%s", QuoteSheet(sheet), CellName(col, row))
}

// CellName returns the sheet-less A1 name of a cell, e.g. H20.
func CellName(col, row int) string {
	return fmt.Sprintf("%s%d", ColumnLetters(col), row)
}

// QuoteSheet quotes a sheet name for use in an A1 range.
func QuoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// ColumnLetters converts a 1-based column index to its letters: 1 → A, 27 → AA.
// Non-positive indexes yield "".
func ColumnLetters(col int) string {
	var b []byte
	for col > 0 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
		col /= 26
	}
	return string(b)
}

// ColumnIndex is the inverse of ColumnLetters: "E" → 5, "ai" → 35.
func ColumnIndex(letters string) (int, error) {
	letters = strings.ToUpper(strings.TrimSpace(letters))
	if letters == "" {
		return 0, fmt.Errorf("%w: empty column", ErrInvalidLayout)
	}
	col := 0
	for _, r := range letters {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: bad column %q", ErrInvalidLayout, letters)
		}
		col = col*26 + int(r-'A'+1)
	}
	return col, nil
}
