package activity

import (
	"time"

	"sppd-activity/internal/matrix"
	"sppd-activity/internal/model"
)

// --- Read model ---

// AnnotatedEvent is a calendar event with its description metadata extracted
// and its attachments reconciled across the API and the description.
type AnnotatedEvent struct {
	Event       model.CalendarEvent
	Disposition *string
	SavedAtText *string
	ActivityID  *string
	Body        string
}

// DayCell is one populated entry of a day column.
type DayCell struct {
	Row    int
	Cell   string
	Raw    string
	Fields matrix.CellFields
}

// --- UseCase Inputs ---

type PlanAppendInput struct {
	Date time.Time
}

type CommitAppendInput struct {
	Slot  matrix.ReservedSlot
	Value string
}

type RecordEventInput struct {
	EventID string
}

type ListEventsInput struct {
	From  time.Time
	To    time.Time
	Limit int
}

type UpdateDispositionInput struct {
	EventID     string
	Disposition string // empty removes the annotation
}

type DayCellsInput struct {
	Date time.Time
}

// --- UseCase Outputs ---

type PlanAppendOutput struct {
	Slot matrix.ReservedSlot
}

type CommitAppendOutput struct {
	Slot  matrix.ReservedSlot
	Value string
}

type RecordEventOutput struct {
	EventID string
	Slot    matrix.ReservedSlot
	Value   string
}

type ListEventsOutput struct {
	Events []AnnotatedEvent
	From   time.Time
	To     time.Time
}

type DetailEventOutput struct {
	Event AnnotatedEvent
}

type UpdateDispositionOutput struct {
	Event AnnotatedEvent
}

type DayCellsOutput struct {
	Sheet  string
	Column string
	Cells  []DayCell
	Free   int // rows left in the append window
}
