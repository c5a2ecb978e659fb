package usecase

import (
	"errors"
	"fmt"
	"time"

	"sppd-activity/internal/activity"
	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/model"
)

func (uc *implUseCase) sheetName(date time.Time) string {
	return uc.dateMath.SheetName(uc.cfg.SheetPrefix, date)
}

// annotate runs the description through the parser and reconciles attachments.
func (uc *implUseCase) annotate(ev model.CalendarEvent) activity.AnnotatedEvent {
	ann := uc.parser.Parse(ev.Description)
	ev.Attachments = uc.parser.Reconcile(ev.Attachments, ev.Description)
	return activity.AnnotatedEvent{
		Event:       ev,
		Disposition: ann.Disposition,
		SavedAtText: ann.SavedAtText,
		ActivityID:  ann.ActivityID,
		Body:        ann.CleanedBody,
	}
}

// mapRepoError converts repository sentinels into domain errors. Other errors pass through.
func (uc *implUseCase) mapRepoError(sheet string, err error) error {
	switch {
	case errors.Is(err, repository.ErrEventNotFound):
		return activity.ErrEventNotFound
	case errors.Is(err, repository.ErrSheetNotFound):
		return fmt.Errorf("%w: %s", activity.ErrSheetNotFound, sheet)
	default:
		return err
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
