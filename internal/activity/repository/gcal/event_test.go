package gcal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/activity/repository/gcal"
	"sppd-activity/internal/model"
	"sppd-activity/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newRepo(t *testing.T, handler http.HandlerFunc) repository.EventRepository {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := gcalendar.NewClient(context.Background(), ts.Client(), time.UTC, ts.URL+"/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return gcal.New(client, "cal-1", &mockLogger{})
}

func TestEventRepository(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/calendars/cal-1/events" && r.Method == http.MethodGet:
			if r.URL.Query().Get("maxResults") != "5" {
				t.Errorf("expected maxResults=5, got %s", r.URL.RawQuery)
			}
			w.Write([]byte(`{"items": [{
				"id": "ev-1",
				"summary": "Rapat",
				"start": {"dateTime": "2024-08-05T09:00:00Z"},
				"attachments": [{"fileUrl": "https://drive.google.com/file/d/F1", "title": "u.pdf"}]
			}]}`))
		case r.URL.Path == "/calendars/cal-1/events/ev-1" && r.Method == http.MethodGet:
			w.Write([]byte(`{"id": "ev-1", "summary": "Rapat", "start": {"date": "2024-08-05"}}`))
		case r.URL.Path == "/calendars/cal-1/events/ev-1" && r.Method == http.MethodPatch:
			w.Write([]byte(`{"id": "ev-1", "description": "baru"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	events, err := repo.ListEvents(ctx, repository.ListEventsOptions{Limit: 5})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 || len(events[0].Attachments) != 1 {
		t.Fatalf("unexpected events %+v", events)
	}
	if events[0].Attachments[0].Source != model.SourceAPI {
		t.Errorf("API attachments must be tagged api, got %q", events[0].Attachments[0].Source)
	}

	ev, err := repo.GetEvent(ctx, "ev-1")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if !ev.IsAllDay || ev.Start.Day() != 5 {
		t.Errorf("unexpected event %+v", ev)
	}

	if _, err := repo.GetEvent(ctx, "missing"); !errors.Is(err, repository.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}

	updated, err := repo.UpdateDescription(ctx, repository.UpdateDescriptionOptions{EventID: "ev-1", Description: "baru"})
	if err != nil {
		t.Fatalf("UpdateDescription: %v", err)
	}
	if updated.Description != "baru" {
		t.Errorf("unexpected description %q", updated.Description)
	}

	if _, err := repo.UpdateDescription(ctx, repository.UpdateDescriptionOptions{EventID: "missing"}); !errors.Is(err, repository.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}
