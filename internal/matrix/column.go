package matrix

import "time"

// ResolveColumn returns the 1-based sheet column whose header cell holds target's date.
// Header cells are read left to right starting at the layout's first column; the first
// match wins. Cells past the layout's last column are not considered.
func ResolveColumn(l Layout, header []any, target time.Time) (int, error) {
	n := len(header)
	if n > l.Width() {
		n = l.Width()
	}
	for i := 0; i < n; i++ {
		if MatchSerial(l, header[i], target) {
			return l.FirstColumn + i, nil
		}
	}
	return 0, ErrDateColumnNotFound
}
