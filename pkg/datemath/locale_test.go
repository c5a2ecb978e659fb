package datemath_test

import (
	"testing"
	"time"

	"sppd-activity/pkg/datemath"
)

func TestMonthName(t *testing.T) {
	if got := datemath.MonthName(time.August); got != "Agustus" {
		t.Errorf("MonthName(August) = %q", got)
	}
	if got := datemath.MonthName(time.Month(13)); got != "" {
		t.Errorf("MonthName(13) = %q, want empty", got)
	}
}

func TestSheetName(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Jakarta")

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"August 2024", time.Date(2024, 8, 5, 9, 0, 0, 0, parser.Location()), "Giat_Agustus_24"},
		{"January 2005", time.Date(2005, 1, 31, 9, 0, 0, 0, parser.Location()), "Giat_Januari_05"},
		// 31 Dec 20:00 UTC is 1 Jan in Jakarta.
		{"Year rollover", time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC), "Giat_Januari_25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.SheetName("Giat", tt.t); got != tt.want {
				t.Errorf("SheetName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeLabel(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Jakarta")

	start := time.Date(2024, 8, 5, 2, 0, 0, 0, time.UTC) // 09:00 WIB
	if got := parser.TimeLabel(start, false); got != "09:00" {
		t.Errorf("TimeLabel() = %q, want 09:00", got)
	}
	if got := parser.TimeLabel(start, true); got != datemath.AllDayLabel {
		t.Errorf("TimeLabel(allDay) = %q", got)
	}
	if got := parser.TimeLabel(time.Time{}, false); got != datemath.AllDayLabel {
		t.Errorf("TimeLabel(zero) = %q", got)
	}
}
