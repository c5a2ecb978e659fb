package gcal

import (
	"context"
	"errors"

	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/model"
	"sppd-activity/pkg/gcalendar"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    opt.From,
		TimeMax:    opt.To,
		MaxResults: int64(opt.Limit),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, err
	}

	out := make([]model.CalendarEvent, len(events))
	for i, ev := range events {
		out[i] = toModel(ev)
	}
	return out, nil
}

func (r *implRepository) GetEvent(ctx context.Context, id string) (model.CalendarEvent, error) {
	ev, err := r.client.GetEvent(ctx, r.calendarID, id)
	if err != nil {
		if errors.Is(err, gcalendar.ErrEventNotFound) {
			return model.CalendarEvent{}, repository.ErrEventNotFound
		}
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("GetEvent"), id, err)
		return model.CalendarEvent{}, err
	}
	return toModel(*ev), nil
}

func (r *implRepository) UpdateDescription(ctx context.Context, opt repository.UpdateDescriptionOptions) (model.CalendarEvent, error) {
	ev, err := r.client.UpdateDescription(ctx, r.calendarID, opt.EventID, opt.Description)
	if err != nil {
		if errors.Is(err, gcalendar.ErrEventNotFound) {
			return model.CalendarEvent{}, repository.ErrEventNotFound
		}
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("UpdateDescription"), opt.EventID, err)
		return model.CalendarEvent{}, err
	}
	return toModel(*ev), nil
}

func toModel(ev gcalendar.Event) model.CalendarEvent {
	var attachments []model.Attachment
	for _, a := range ev.Attachments {
		attachments = append(attachments, model.Attachment{
			FileURL:  a.FileURL,
			Title:    a.Title,
			FileID:   a.FileID,
			MimeType: a.MimeType,
			Source:   model.SourceAPI,
		})
	}
	return model.CalendarEvent{
		ID:          ev.ID,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       ev.StartTime,
		End:         ev.EndTime,
		IsAllDay:    ev.IsAllDay,
		HtmlLink:    ev.HtmlLink,
		Attachments: attachments,
	}
}
