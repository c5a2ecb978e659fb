package matrix_test

import (
	"errors"
	"testing"
	"time"

	"sppd-activity/internal/matrix"
)

func filled(m, n int) []any {
	cells := make([]any, n)
	for i := range cells {
		if i < m {
			cells[i] = "Rapat|Aula|09:00|"
		} else {
			cells[i] = ""
		}
	}
	return cells
}

func TestAllocateRow(t *testing.T) {
	l := matrix.DefaultLayout(time.UTC)
	n := l.Window()

	for m := 0; m <= n; m++ {
		// The API may return the column padded to the window or truncated after the last value.
		for _, cells := range [][]any{filled(m, n), filled(m, m)} {
			got, err := matrix.AllocateRow(l, cells)
			if m == n {
				if !errors.Is(err, matrix.ErrColumnFull) {
					t.Fatalf("m=%d: expected ErrColumnFull, got (%d, %v)", m, got, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("m=%d: unexpected error %v", m, err)
			}
			if got != m {
				t.Errorf("m=%d: AllocateRow() = %d", m, got)
			}
		}
	}
}

func TestAllocateRowEdgeCases(t *testing.T) {
	l := matrix.DefaultLayout(time.UTC)

	t.Run("allocates after last value, not first gap", func(t *testing.T) {
		got, err := matrix.AllocateRow(l, []any{"a", "", "b"})
		if err != nil || got != 3 {
			t.Errorf("got (%d, %v), want (3, nil)", got, err)
		}
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		got, _ := matrix.AllocateRow(l, []any{"a", "  ", nil})
		if got != 1 {
			t.Errorf("got %d, want 1", got)
		}
	})

	t.Run("numbers are values", func(t *testing.T) {
		got, _ := matrix.AllocateRow(l, []any{0.0, 12.0})
		if got != 2 {
			t.Errorf("got %d, want 2", got)
		}
	})

	t.Run("values past the window are ignored", func(t *testing.T) {
		cells := make([]any, l.Window()+3)
		cells[0] = "a"
		cells[l.Window()+1] = "stray"
		got, err := matrix.AllocateRow(l, cells)
		if err != nil || got != 1 {
			t.Errorf("got (%d, %v), want (1, nil)", got, err)
		}
	})

	t.Run("small window", func(t *testing.T) {
		small := l
		small.LastDataRow = small.FirstDataRow + 1
		if _, err := matrix.AllocateRow(small, []any{"a", "b"}); !errors.Is(err, matrix.ErrColumnFull) {
			t.Errorf("expected ErrColumnFull, got %v", err)
		}
	})
}
