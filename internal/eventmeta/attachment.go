package eventmeta

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"sppd-activity/internal/model"
)

var driveFileIDRe = regexp.MustCompile(`/d/([A-Za-z0-9_-]+)`)

// DescriptionAttachments returns the attachment anchors found in description,
// in document order, without duplicates.
func (p *Parser) DescriptionAttachments(description string) []model.Attachment {
	var out []model.Attachment
	seen := make(map[string]bool)
	for _, m := range p.anchor.FindAllStringSubmatch(description, -1) {
		a, ok := p.attachmentFromAnchor(m)
		if !ok || seen[a.FileURL] {
			continue
		}
		seen[a.FileURL] = true
		out = append(out, a)
	}
	return out
}

// Reconcile merges the attachments declared by the calendar API with those
// linked from the description. API entries come first, in their order; then
// description entries whose URL is not already present.
func (p *Parser) Reconcile(api []model.Attachment, description string) []model.Attachment {
	out := make([]model.Attachment, 0, len(api))
	seen := make(map[string]bool, len(api))
	for _, a := range api {
		a.Source = model.SourceAPI
		if a.FileID == "" {
			a.FileID = FileIDFromURL(a.FileURL)
		}
		seen[a.FileURL] = true
		out = append(out, a)
	}

	for _, a := range p.DescriptionAttachments(description) {
		if seen[a.FileURL] {
			continue
		}
		seen[a.FileURL] = true
		out = append(out, a)
	}
	return out
}

// attachmentFromAnchor builds an attachment from a submatch of the anchor pattern
// if the link text carries the attachment keyword or the URL points at storage.
func (p *Parser) attachmentFromAnchor(m []string) (model.Attachment, bool) {
	if len(m) < 4 {
		return model.Attachment{}, false
	}
	href := m[1]
	if href == "" {
		href = m[2]
	}
	href = strings.TrimSpace(html.UnescapeString(href))
	if href == "" {
		return model.Attachment{}, false
	}

	title := strings.TrimSpace(plainText(m[3]))
	if !containsFold(title, p.vocab.AttachmentKeyword) && !containsFold(href, p.vocab.StorageHost) {
		return model.Attachment{}, false
	}
	if title == "" {
		title = href
	}

	return model.Attachment{
		FileURL: href,
		Title:   title,
		FileID:  FileIDFromURL(href),
		Source:  model.SourceDescription,
	}, true
}

// FileIDFromURL extracts a Drive file id from links like /file/d/<id>/view or
// open?id=<id>. Other URLs yield "".
func FileIDFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if m := driveFileIDRe.FindStringSubmatch(u.Path); m != nil {
		return m[1]
	}
	return u.Query().Get("id")
}
