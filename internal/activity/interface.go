package activity

import "context"

// UseCase defines the business logic interface for the activity domain.
type UseCase interface {
	// PlanAppend finds the cell the next entry for a date goes to. Nothing is reserved.
	PlanAppend(ctx context.Context, input PlanAppendInput) (PlanAppendOutput, error)
	// CommitAppend writes a value into a planned slot.
	CommitAppend(ctx context.Context, input CommitAppendInput) (CommitAppendOutput, error)
	// RecordEvent plans and commits the matrix entry for a calendar event.
	RecordEvent(ctx context.Context, input RecordEventInput) (RecordEventOutput, error)

	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	DetailEvent(ctx context.Context, id string) (DetailEventOutput, error)
	// UpdateDisposition rewrites the event description with a new disposition line.
	UpdateDisposition(ctx context.Context, input UpdateDispositionInput) (UpdateDispositionOutput, error)

	DayCells(ctx context.Context, input DayCellsInput) (DayCellsOutput, error)
}
