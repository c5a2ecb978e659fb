package datemath

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// AllDayLabel is the time label used for events without a start time.
const AllDayLabel = "Sepanjang Hari"

// MonthName returns the Indonesian name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// SheetName returns the monthly activity sheet name for t, e.g.
// SheetName("Giat", 2024-08-05) == "Giat_Agustus_24".
func (p *Parser) SheetName(prefix string, t time.Time) string {
	t = t.In(p.location)
	return fmt.Sprintf("%s_%s_%02d", prefix, MonthName(t.Month()), t.Year()%100)
}

// TimeLabel formats an event time for a matrix cell.
// All-day events get AllDayLabel, otherwise the start time as HH:MM.
func (p *Parser) TimeLabel(start time.Time, allDay bool) string {
	if allDay || start.IsZero() {
		return AllDayLabel
	}
	return start.In(p.location).Format("15:04")
}
