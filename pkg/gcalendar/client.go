package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const primaryCalendar = "primary"

// Client wraps the Google Calendar API service.
type Client struct {
	service  *calendar.Service
	location *time.Location
}

// NewClient creates a Calendar client from an authorized HTTP client. All-day
// dates are interpreted in loc. An endpoint may be given to target a fake server.
func NewClient(ctx context.Context, httpClient *http.Client, loc *time.Location, endpoint ...string) (*Client, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if len(endpoint) > 0 && endpoint[0] != "" {
		opts = append(opts, option.WithEndpoint(endpoint[0]))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Client{service: svc, location: loc}, nil
}

// ListEvents returns the events between TimeMin and TimeMax ordered by start time,
// following page tokens until MaxResults events are collected or pages run out.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime")
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	var events []Event
	pageToken := ""
	for {
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar events: %w", err)
		}

		for _, item := range page.Items {
			if item.Status == "cancelled" {
				continue
			}
			events = append(events, c.toEvent(item))
			if req.MaxResults > 0 && int64(len(events)) >= req.MaxResults {
				return events, nil
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			return events, nil
		}
	}
}

// GetEvent fetches a single event. A missing or deleted event yields ErrEventNotFound.
func (c *Client) GetEvent(ctx context.Context, calID, eventID string) (*Event, error) {
	item, err := c.service.Events.Get(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	if item.Status == "cancelled" {
		return nil, ErrEventNotFound
	}

	ev := c.toEvent(item)
	return &ev, nil
}

// UpdateDescription patches only the description of an event, leaving
// attachments and every other field untouched.
func (c *Client) UpdateDescription(ctx context.Context, calID, eventID, description string) (*Event, error) {
	patch := &calendar.Event{
		Description:     description,
		ForceSendFields: []string{"Description"},
	}

	item, err := c.service.Events.Patch(calendarID(calID), eventID, patch).
		SupportsAttachments(true).
		Context(ctx).
		Do()
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	ev := c.toEvent(item)
	return &ev, nil
}

func (c *Client) toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		HtmlLink:    item.HtmlLink,
	}
	ev.StartTime, ev.IsAllDay = c.parseEventTime(item.Start)
	ev.EndTime, _ = c.parseEventTime(item.End)

	for _, a := range item.Attachments {
		if a == nil {
			continue
		}
		ev.Attachments = append(ev.Attachments, Attachment{
			FileURL:  a.FileUrl,
			Title:    a.Title,
			FileID:   a.FileId,
			MimeType: a.MimeType,
		})
	}
	return ev
}

// parseEventTime reads a timed or all-day boundary. All-day dates are midnight in
// the client location.
func (c *Client) parseEventTime(t *calendar.EventDateTime) (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return parsed.In(c.location), false
	}
	if t.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", t.Date, c.location)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}

func calendarID(id string) string {
	if id == "" {
		return primaryCalendar
	}
	return id
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone
	}
	return false
}
