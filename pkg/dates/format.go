package dates

import (
	"fmt"
	"time"
)

/*
Format buckets a date relative to the clock's today:

	0 days          Today
	1 day           Tomorrow
	2 to 7 days     weekday name, e.g. Friday
	anything else   2 Jan 2006 style, past dates included
*/
func Format(clock Clock, date CalendarDate) string {
	diffDays := DaysBetween(clock.Today(), date)
	target := date.In(time.UTC)
	switch {
	case diffDays == 0:
		return "Today"
	case diffDays == 1:
		return "Tomorrow"
	case diffDays > 0 && diffDays <= 7:
		return target.Format("Monday")
	default:
		return target.Format("2 Jan 2006")
	}
}

// FormatDateTime is Format followed by the time as HH:MM, when there is one.
func FormatDateTime(clock Clock, date CalendarDate, t *ClockTime) string {
	s := Format(clock, date)
	if t != nil {
		s += fmt.Sprintf(" %02d:%02d", t.Hour, t.Minute)
	}
	return s
}
