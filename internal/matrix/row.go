package matrix

import "strings"

// AllocateRow returns the 0-based offset, inside the append window, of the row after
// the last populated cell of column. The Sheets API drops trailing empty cells, so
// column may be shorter than the window. Cells beyond the window are ignored.
func AllocateRow(l Layout, column []any) (int, error) {
	window := l.Window()
	last := -1
	for i := 0; i < len(column) && i < window; i++ {
		if populated(column[i]) {
			last = i
		}
	}
	next := last + 1
	if next >= window {
		return 0, ErrColumnFull
	}
	return next, nil
}

func populated(v any) bool {
	switch s := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(s) != ""
	default:
		return true
	}
}
