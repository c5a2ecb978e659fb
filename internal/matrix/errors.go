package matrix

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDateColumnNotFound = errors.New("date column not found")
	ErrColumnFull         = errors.New("column full")
	ErrSlotTaken          = errors.New("slot already taken")
	ErrInvalidSlot        = errors.New("invalid slot")
	ErrInvalidLayout      = errors.New("invalid matrix layout")
)

// SlotError ties an allocation failure to the sheet and date it happened on.
type SlotError struct {
	Sheet string
	Date  time.Time
	Err   error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: sheet %s, date %s", e.Err, e.Sheet, e.Date.Format("2006-01-02"))
}

func (e *SlotError) Unwrap() error { return e.Err }
