package matrix

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// DecodeSerial converts a day-serial cell into a date at midnight in the
// layout's location. The fractional part of the serial is dropped.
// Cells that are not numbers report false.
func DecodeSerial(l Layout, cell any) (time.Time, bool) {
	serial, ok := toFloat(cell)
	if !ok || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	days := math.Floor(serial)
	if math.Abs(days) > 3e6 {
		return time.Time{}, false
	}
	epoch := l.Epoch.In(l.Location)
	base := time.Date(epoch.Year(), epoch.Month(), epoch.Day(), 0, 0, 0, 0, l.Location)
	return base.AddDate(0, 0, int(days)), true
}

// MatchSerial reports whether cell decodes to the same calendar day as target.
func MatchSerial(l Layout, cell any, target time.Time) bool {
	d, ok := DecodeSerial(l, cell)
	if !ok {
		return false
	}
	target = target.In(l.Location)
	return d.Year() == target.Year() && d.Month() == target.Month() && d.Day() == target.Day()
}

// Serial returns the day-serial of t's calendar day in the layout's location.
func Serial(l Layout, t time.Time) int {
	t = t.In(l.Location)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	epoch := l.Epoch.In(l.Location)
	base := time.Date(epoch.Year(), epoch.Month(), epoch.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(base).Hours() / 24)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
