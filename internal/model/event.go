package model

import "time"

// AttachmentSource records where an attachment record came from.
type AttachmentSource string

const (
	SourceAPI         AttachmentSource = "api"
	SourceDescription AttachmentSource = "description"
)

// Attachment is a file linked to a calendar event. Two attachments with the
// same FileURL are the same attachment.
type Attachment struct {
	FileURL  string           `json:"fileUrl"`
	Title    string           `json:"title"`
	FileID   string           `json:"fileId"`
	MimeType string           `json:"mimeType,omitempty"`
	Source   AttachmentSource `json:"source"`
}

// CalendarEvent is an event as fetched from the calendar. It is read-only to the
// matrix and description logic.
type CalendarEvent struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	IsAllDay    bool
	HtmlLink    string
	Attachments []Attachment
}
