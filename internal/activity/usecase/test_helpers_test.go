package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/eventmeta"
	"sppd-activity/internal/matrix"
	"sppd-activity/internal/model"
	"sppd-activity/pkg/datemath"
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

// mockMatrixRepo is an in-memory spreadsheet: one header and a set of columns per sheet.
type mockMatrixRepo struct {
	layout  matrix.Layout
	headers map[string][]any
	columns map[string]map[int][]any
	writes  []repository.WriteCellOptions
	err     error
}

func newMockMatrixRepo(l matrix.Layout) *mockMatrixRepo {
	return &mockMatrixRepo{
		layout:  l,
		headers: map[string][]any{},
		columns: map[string]map[int][]any{},
	}
}

func (m *mockMatrixRepo) ReadHeader(ctx context.Context, opt repository.ReadHeaderOptions) ([]any, error) {
	if m.err != nil {
		return nil, m.err
	}
	h, ok := m.headers[opt.Sheet]
	if !ok {
		return nil, repository.ErrSheetNotFound
	}
	return h, nil
}

func (m *mockMatrixRepo) ReadColumn(ctx context.Context, opt repository.ReadColumnOptions) ([]any, error) {
	if _, ok := m.headers[opt.Sheet]; !ok {
		return nil, repository.ErrSheetNotFound
	}
	return append([]any(nil), m.columns[opt.Sheet][opt.Column]...), nil
}

func (m *mockMatrixRepo) ReadCell(ctx context.Context, opt repository.CellOptions) (string, error) {
	col := m.columns[opt.Sheet][opt.Column]
	i := opt.Row - m.layout.FirstDataRow
	if i < 0 || i >= len(col) || col[i] == nil {
		return "", nil
	}
	return fmt.Sprint(col[i]), nil
}

func (m *mockMatrixRepo) WriteCell(ctx context.Context, opt repository.WriteCellOptions) error {
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, opt)
	if m.columns[opt.Sheet] == nil {
		m.columns[opt.Sheet] = map[int][]any{}
	}
	col := m.columns[opt.Sheet][opt.Column]
	i := opt.Row - m.layout.FirstDataRow
	for len(col) <= i {
		col = append(col, nil)
	}
	col[i] = opt.Value
	m.columns[opt.Sheet][opt.Column] = col
	return nil
}

// mockEventRepo serves events from a map and records description patches.
type mockEventRepo struct {
	events  map[string]model.CalendarEvent
	listed  repository.ListEventsOptions
	err     error
	patched []repository.UpdateDescriptionOptions
}

func (m *mockEventRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	m.listed = opt
	if m.err != nil {
		return nil, m.err
	}
	var out []model.CalendarEvent
	for _, ev := range m.events {
		if !ev.Start.Before(opt.From) && !ev.Start.After(opt.To) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventRepo) GetEvent(ctx context.Context, id string) (model.CalendarEvent, error) {
	ev, ok := m.events[id]
	if !ok {
		return model.CalendarEvent{}, repository.ErrEventNotFound
	}
	return ev, nil
}

func (m *mockEventRepo) UpdateDescription(ctx context.Context, opt repository.UpdateDescriptionOptions) (model.CalendarEvent, error) {
	ev, ok := m.events[opt.EventID]
	if !ok {
		return model.CalendarEvent{}, repository.ErrEventNotFound
	}
	m.patched = append(m.patched, opt)
	ev.Description = opt.Description
	m.events[opt.EventID] = ev
	return ev, nil
}

const augustSheet = "Giat_Agustus_24"

type fixture struct {
	uc     *implUseCase
	matrix *mockMatrixRepo
	events *mockEventRepo
	loc    *time.Location
	layout matrix.Layout
}

// newFixture builds a use case over an August 2024 sheet whose header starts on
// 2 August, so 5 August sits in column H.
func newFixture(t *testing.T, verify bool) fixture {
	t.Helper()
	dm, err := datemath.NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	loc := dm.Location()
	layout := matrix.DefaultLayout(loc)

	mr := newMockMatrixRepo(layout)
	var header []any
	for d := 2; d <= 31; d++ {
		header = append(header, float64(matrix.Serial(layout, time.Date(2024, 8, d, 0, 0, 0, 0, loc))))
	}
	mr.headers[augustSheet] = header
	mr.columns[augustSheet] = map[int][]any{
		8: {"Apel Pagi|Halaman|07:30|", "Rapat|Aula|09:00|Camat"},
	}

	er := &mockEventRepo{events: map[string]model.CalendarEvent{}}

	uc := New(&mockLogger{}, mr, er, eventmeta.NewParser(eventmeta.DefaultVocabulary()), dm, Config{
		Layout:             layout,
		SheetPrefix:        "Giat",
		VerifyBeforeCommit: verify,
	})
	uc.now = func() time.Time { return time.Date(2024, 8, 5, 14, 5, 9, 0, time.UTC) }

	return fixture{uc: uc, matrix: mr, events: er, loc: loc, layout: layout}
}
