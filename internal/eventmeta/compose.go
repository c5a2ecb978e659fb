package eventmeta

import (
	"fmt"
	"html"
	"strings"
	"time"

	"sppd-activity/internal/model"
)

// SavedAtLayout is the time layout of the "Disimpan pada:" line.
const SavedAtLayout = "2/1/2006, 3:04:05 PM"

// ComposeInput is everything needed to write a description back to an event.
type ComposeInput struct {
	Body        string // cleaned body, lines separated by "\n"
	ActivityID  *string
	Disposition *string
	Attachments []model.Attachment // only description-sourced entries are written
	SavedAt     time.Time
}

// Compose renders a description that Parse reads back into the same
// annotations. Lines are joined with <br>.
func (p *Parser) Compose(in ComposeInput) string {
	var lines []string
	for _, line := range strings.Split(in.Body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if in.ActivityID != nil && *in.ActivityID != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", p.vocab.ActivityIDLabel, html.EscapeString(*in.ActivityID)))
	}

	for _, a := range in.Attachments {
		if a.Source != model.SourceDescription || a.FileURL == "" {
			continue
		}
		title := a.Title
		if title == "" {
			title = p.vocab.AttachmentKeyword
		}
		lines = append(lines, fmt.Sprintf(`📎 <a href="%s">%s</a>`, html.EscapeString(a.FileURL), html.EscapeString(title)))
	}

	if in.Disposition != nil && strings.TrimSpace(*in.Disposition) != "" {
		lines = append(lines, fmt.Sprintf("📍 %s: %s", p.vocab.DispositionLabel, html.EscapeString(strings.TrimSpace(*in.Disposition))))
	}

	if !in.SavedAt.IsZero() {
		lines = append(lines, fmt.Sprintf("%s: %s", p.vocab.SavedAtLabel, in.SavedAt.Format(SavedAtLayout)))
	}

	return strings.Join(lines, "<br>")
}
