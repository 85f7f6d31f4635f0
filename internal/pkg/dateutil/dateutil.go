package dateutil

import (
	"time"
)

// DateLayout is the wire format for date-only query parameters.
const DateLayout = "2006-01-02"

// ParseDateOnly parses a YYYY-MM-DD string in local time. Returns the zero
// time and false when the input is empty or malformed.
func ParseDateOnly(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DayRange expands a date to its local [00:00:00.000, 23:59:59.999] window.
func DayRange(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	to := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), day.Location())
	return from, to
}

// BuildRange resolves the register-time window for a list query. When an
// explicit from/to pair is present it wins and may be open-ended; otherwise
// the single date (or today) is expanded to a full local day.
func BuildRange(date, dateFrom, dateTo string, now time.Time) (*time.Time, *time.Time) {
	if dateFrom != "" || dateTo != "" {
		var from, to *time.Time
		if t, ok := ParseDateOnly(dateFrom); ok {
			from = &t
		}
		if t, ok := ParseDateOnly(dateTo); ok {
			_, end := DayRange(t)
			to = &end
		}
		return from, to
	}

	day := now
	if t, ok := ParseDateOnly(date); ok {
		day = t
	}
	from, to := DayRange(day)
	return &from, &to
}

// SetIfAbsent returns current unchanged when it is already set, otherwise a
// pointer to now. Forward status transitions rely on this to keep their
// timestamps set-once.
func SetIfAbsent(current *time.Time, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	t := now
	return &t
}

// MinutesBetween is the whole-minute duration from start to end, or -1 when
// end precedes start.
func MinutesBetween(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		return -1
	}
	return int(diff / time.Minute)
}
