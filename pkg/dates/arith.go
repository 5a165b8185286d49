package dates

import "time"

// NextWeekday returns the next date falling on wd, strictly after now's date.
// When now already is wd the result is a week ahead.
func NextWeekday(now time.Time, wd time.Weekday) CalendarDate {
	daysUntil := (int(wd) - int(now.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return PlusDays(now, daysUntil)
}

func PlusDays(now time.Time, n int) CalendarDate {
	return DateOf(now.AddDate(0, 0, n))
}

// PlusMonths relies on time.Time.AddDate for overflow, so Jan 31 + 1 month
// lands in early March.
func PlusMonths(now time.Time, n int) CalendarDate {
	return DateOf(now.AddDate(0, n, 0))
}

func PlusYears(now time.Time, n int) CalendarDate {
	return DateOf(now.AddDate(n, 0, 0))
}
