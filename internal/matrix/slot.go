package matrix

import (
	"time"

	"github.com/google/uuid"
)

// ReservedSlot is the result of planning an append: the cell the next entry for a
// date should go to, computed from a snapshot of the sheet. Nothing holds the slot;
// another writer planning against the same snapshot gets the same cell. Callers
// must serialize Plan/commit pairs per sheet outside this process if they need to.
type ReservedSlot struct {
	Token     string    `json:"token"`
	Sheet     string    `json:"sheet"`
	Date      time.Time `json:"date"`
	Column    int       `json:"column"`
	Row       int       `json:"row"`
	Cell      string    `json:"cell"`
	PlannedAt time.Time `json:"planned_at"`
}

// Plan resolves the date column from header and the next free row from column.
// header holds the cells of the header range, column the cells of the chosen
// column's append window (both as returned by the sheet).
//
// Failures are *SlotError wrapping ErrDateColumnNotFound or ErrColumnFull.
func Plan(l Layout, sheet string, header []any, column func(col int) ([]any, error), date time.Time) (ReservedSlot, error) {
	col, err := ResolveColumn(l, header, date)
	if err != nil {
		return ReservedSlot{}, &SlotError{Sheet: sheet, Date: date, Err: err}
	}

	values, err := column(col)
	if err != nil {
		return ReservedSlot{}, err
	}

	offset, err := AllocateRow(l, values)
	if err != nil {
		return ReservedSlot{}, &SlotError{Sheet: sheet, Date: date, Err: err}
	}

	row := l.FirstDataRow + offset
	return ReservedSlot{
		Token:     uuid.NewString(),
		Sheet:     sheet,
		Date:      date,
		Column:    col,
		Row:       row,
		Cell:      CellName(col, row),
		PlannedAt: time.Now(),
	}, nil
}

// Validate checks that a slot, possibly round-tripped through a client, still
// addresses a cell inside the layout's append window.
func (s ReservedSlot) Validate(l Layout) error {
	switch {
	case s.Token == "":
		return ErrInvalidSlot
	case s.Sheet == "":
		return ErrInvalidSlot
	case !l.HasColumn(s.Column) || !l.HasDataRow(s.Row):
		return ErrInvalidSlot
	}
	if _, err := uuid.Parse(s.Token); err != nil {
		return ErrInvalidSlot
	}
	return nil
}

// Range returns the A1 range of the slot's cell.
func (s ReservedSlot) Range(l Layout) string {
	return l.CellRange(s.Sheet, s.Column, s.Row)
}
