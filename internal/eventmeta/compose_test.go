package eventmeta_test

import (
	"strings"
	"testing"
	"time"

	"sppd-activity/internal/eventmeta"
	"sppd-activity/internal/model"
)

func TestComposeRoundTrip(t *testing.T) {
	p := eventmeta.NewParser(eventmeta.DefaultVocabulary())
	savedAt := time.Date(2024, 8, 5, 21, 5, 9, 0, time.UTC)

	desc := p.Compose(eventmeta.ComposeInput{
		Body:        "Rapat koordinasi\n\nBawa laptop",
		ActivityID:  strPtr("GK-12"),
		Disposition: strPtr("Camat & Sekcam"),
		Attachments: []model.Attachment{
			{FileURL: "https://drive.google.com/file/d/API1", Title: "api.pdf", Source: model.SourceAPI},
			{FileURL: "https://drive.google.com/file/d/D1/view?a=1&b=2", Title: "Lampiran Undangan", Source: model.SourceDescription},
		},
		SavedAt: savedAt,
	})

	if strings.Contains(desc, "API1") {
		t.Errorf("API attachments must not be written into the description: %s", desc)
	}
	if !strings.HasSuffix(desc, "Disimpan pada: 5/8/2024, 9:05:09 PM") {
		t.Errorf("unexpected saved-at line in %q", desc)
	}

	got := p.Parse(desc)
	if show(got.Disposition) != "Camat & Sekcam" {
		t.Errorf("Disposition = %s", show(got.Disposition))
	}
	if show(got.ActivityID) != "GK-12" {
		t.Errorf("ActivityID = %s", show(got.ActivityID))
	}
	if show(got.SavedAtText) != "5/8/2024, 9:05:09 PM" {
		t.Errorf("SavedAtText = %s", show(got.SavedAtText))
	}
	if got.CleanedBody != "Rapat koordinasi\nBawa laptop" {
		t.Errorf("CleanedBody = %q", got.CleanedBody)
	}

	atts := p.Reconcile(nil, desc)
	if len(atts) != 1 || atts[0].FileURL != "https://drive.google.com/file/d/D1/view?a=1&b=2" || atts[0].FileID != "D1" {
		t.Errorf("unexpected attachments %+v", atts)
	}
}

func TestComposeOmitsAbsentAnnotations(t *testing.T) {
	p := eventmeta.NewParser(eventmeta.DefaultVocabulary())

	desc := p.Compose(eventmeta.ComposeInput{Body: "Apel pagi", Disposition: strPtr("  ")})
	if desc != "Apel pagi" {
		t.Errorf("Compose() = %q, want %q", desc, "Apel pagi")
	}
	if got := p.Parse(desc); got.Disposition != nil || got.SavedAtText != nil {
		t.Errorf("unexpected annotations %+v", got)
	}
}
