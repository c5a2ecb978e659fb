package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	IsAllDay    bool
	Attachments []Attachment
}

// Attachment is a file attached to an event through the Calendar API.
type Attachment struct {
	FileURL  string
	Title    string
	FileID   string
	MimeType string
}

// ListEventsRequest is the input for listing Google Calendar events.
// Recurring events are expanded into single instances.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64 // total cap across pages, 0 means no cap
}
