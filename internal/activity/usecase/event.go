package usecase

import (
	"context"

	"sppd-activity/internal/activity"
	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/eventmeta"
)

const defaultListLimit = 250

// ListEvents returns the annotated events in [From, To]. A zero To means the end
// of the From day.
func (uc *implUseCase) ListEvents(ctx context.Context, input activity.ListEventsInput) (activity.ListEventsOutput, error) {
	from := uc.dateMath.StartOfDay(input.From)
	to := input.To
	if to.IsZero() {
		to = uc.dateMath.EndOfDay(from)
	} else {
		to = uc.dateMath.EndOfDay(uc.dateMath.StartOfDay(to))
	}
	if to.Before(from) {
		return activity.ListEventsOutput{}, activity.ErrInvalidDateRange
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	events, err := uc.eventRepo.ListEvents(ctx, repository.ListEventsOptions{From: from, To: to, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEvents ListEvents: %v", err)
		return activity.ListEventsOutput{}, err
	}

	out := make([]activity.AnnotatedEvent, len(events))
	for i, ev := range events {
		out[i] = uc.annotate(ev)
	}
	return activity.ListEventsOutput{Events: out, From: from, To: to}, nil
}

func (uc *implUseCase) DetailEvent(ctx context.Context, id string) (activity.DetailEventOutput, error) {
	ev, err := uc.eventRepo.GetEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailEvent GetEvent: %v", err)
		return activity.DetailEventOutput{}, uc.mapRepoError("", err)
	}
	return activity.DetailEventOutput{Event: uc.annotate(ev)}, nil
}

// UpdateDisposition rebuilds the description from its cleaned body, keeping the
// activity id and description-linked attachments, then stamps it with the new
// disposition and the save time.
func (uc *implUseCase) UpdateDisposition(ctx context.Context, input activity.UpdateDispositionInput) (activity.UpdateDispositionOutput, error) {
	ev, err := uc.eventRepo.GetEvent(ctx, input.EventID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateDisposition GetEvent: %v", err)
		return activity.UpdateDispositionOutput{}, uc.mapRepoError("", err)
	}

	current := uc.annotate(ev)
	disposition := input.Disposition
	description := uc.parser.Compose(eventmeta.ComposeInput{
		Body:        current.Body,
		ActivityID:  current.ActivityID,
		Disposition: &disposition,
		Attachments: current.Event.Attachments,
		SavedAt:     uc.now().In(uc.dateMath.Location()),
	})

	updated, err := uc.eventRepo.UpdateDescription(ctx, repository.UpdateDescriptionOptions{
		EventID:     ev.ID,
		Description: description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateDisposition UpdateDescription: %v", err)
		return activity.UpdateDispositionOutput{}, uc.mapRepoError("", err)
	}

	return activity.UpdateDispositionOutput{Event: uc.annotate(updated)}, nil
}
