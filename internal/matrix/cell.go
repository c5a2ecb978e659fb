package matrix

import "strings"

// SummaryPlaceholder replaces a blank event summary in a cell.
const SummaryPlaceholder = "Kegiatan"

const fieldSeparator = "|"

// CellFields are the four ordered fields of a matrix cell.
type CellFields struct {
	Summary     string
	Location    string
	Time        string
	Disposition string
}

// EncodeCell joins the fields as summary|location|time|disposition.
// Field values are written as-is: a "|" inside a field is not escaped, so such
// a cell cannot be decoded back unambiguously.
func EncodeCell(f CellFields) string {
	summary := f.Summary
	if strings.TrimSpace(summary) == "" {
		summary = SummaryPlaceholder
	}
	return strings.Join([]string{summary, f.Location, f.Time, f.Disposition}, fieldSeparator)
}

// DecodeCell splits a cell written by EncodeCell. The last three fields are
// location, time and disposition; anything before them is the summary.
// Cells with fewer than four fields are returned as a bare summary.
func DecodeCell(s string) CellFields {
	parts := strings.Split(s, fieldSeparator)
	if len(parts) < 4 {
		return CellFields{Summary: s}
	}
	n := len(parts)
	return CellFields{
		Summary:     strings.Join(parts[:n-3], fieldSeparator),
		Location:    parts[n-3],
		Time:        parts[n-2],
		Disposition: parts[n-1],
	}
}
