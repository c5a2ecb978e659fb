package matrix_test

import (
	"errors"
	"testing"
	"time"

	"sppd-activity/internal/matrix"
)

// monthHeader returns header cells for every day of the month of first.
func monthHeader(l matrix.Layout, first time.Time) []any {
	var cells []any
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		cells = append(cells, float64(matrix.Serial(l, d)))
	}
	return cells
}

func TestResolveColumn(t *testing.T) {
	loc := jakarta(t)
	l := matrix.DefaultLayout(loc)
	header := monthHeader(l, time.Date(2024, 8, 1, 0, 0, 0, 0, loc))

	for k := range header {
		target := time.Date(2024, 8, 1+k, 10, 0, 0, 0, loc)
		got, err := matrix.ResolveColumn(l, header, target)
		if err != nil {
			t.Fatalf("day %d: unexpected error %v", k+1, err)
		}
		if got != l.FirstColumn+k {
			t.Errorf("day %d: column = %d, want %d", k+1, got, l.FirstColumn+k)
		}
	}

	_, err := matrix.ResolveColumn(l, header, time.Date(2024, 9, 1, 0, 0, 0, 0, loc))
	if !errors.Is(err, matrix.ErrDateColumnNotFound) {
		t.Errorf("expected ErrDateColumnNotFound, got %v", err)
	}
}

func TestResolveColumnEdgeCases(t *testing.T) {
	loc := jakarta(t)
	l := matrix.DefaultLayout(loc)
	target := time.Date(2024, 8, 5, 0, 0, 0, 0, loc)

	t.Run("skips blanks and text", func(t *testing.T) {
		header := []any{"", "Tanggal", nil, 45509.0}
		got, err := matrix.ResolveColumn(l, header, target)
		if err != nil || got != 8 {
			t.Errorf("got (%d, %v), want (8, nil)", got, err)
		}
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		header := []any{45508.0, 45509.0, 45509.5}
		got, _ := matrix.ResolveColumn(l, header, target)
		if got != 6 {
			t.Errorf("got %d, want 6", got)
		}
	})

	t.Run("cells past last column ignored", func(t *testing.T) {
		header := make([]any, l.Width()+1)
		header[l.Width()] = 45509.0
		if _, err := matrix.ResolveColumn(l, header, target); !errors.Is(err, matrix.ErrDateColumnNotFound) {
			t.Errorf("expected ErrDateColumnNotFound, got %v", err)
		}
	})

	t.Run("empty header", func(t *testing.T) {
		if _, err := matrix.ResolveColumn(l, nil, target); !errors.Is(err, matrix.ErrDateColumnNotFound) {
			t.Errorf("expected ErrDateColumnNotFound, got %v", err)
		}
	})
}
