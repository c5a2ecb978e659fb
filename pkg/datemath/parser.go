package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates in requests.
const DateLayout = "2006-01-02"

// Parser resolves dates in a fixed office timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Asia/Jakarta".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate accepts YYYY-MM-DD or one of "today", "tomorrow", "yesterday"
// (also "hari ini", "besok", "kemarin") and returns midnight of that day.
func (p *Parser) ParseDate(s string, baseTime time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "today", "hari ini":
		return p.StartOfDay(baseTime), nil
	case "tomorrow", "besok":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday", "kemarin":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	t, err := time.ParseInLocation(DateLayout, s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return t, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
