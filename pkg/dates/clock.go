package dates

import "time"

// Clock supplies "now" to everything that resolves relative dates.
type Clock func() time.Time

// SystemClock reads the wall clock on every call.
var SystemClock Clock = time.Now

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func (c Clock) Today() CalendarDate {
	return DateOf(c())
}
