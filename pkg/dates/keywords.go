package dates

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Keyword ids. Weekdays share their numbering with time.Weekday.
const (
	KwSunday = iota
	KwMonday
	KwTuesday
	KwWednesday
	KwThursday
	KwFriday
	KwSaturday
	KwToday
	KwTomorrow
	KwSomeday
	KwNext
	KwWeek
	KwMonth
	KwYear
	KwAm
	KwPm
)

var keywords = map[string]int{
	"sunday":    KwSunday,
	"monday":    KwMonday,
	"tuesday":   KwTuesday,
	"wednesday": KwWednesday,
	"thursday":  KwThursday,
	"friday":    KwFriday,
	"saturday":  KwSaturday,

	"today":    KwToday,
	"tomorrow": KwTomorrow,
	"someday":  KwSomeday,

	"next":  KwNext,
	"week":  KwWeek,
	"month": KwMonth,
	"year":  KwYear,

	"am": KwAm,
	"pm": KwPm,
}

// LookupKeyword matches a single word against the keyword table, ignoring case.
func LookupKeyword(word string) (int, bool) {
	// a Caser keeps state, so it is not shared between calls
	id, ok := keywords[cases.Lower(language.Und).String(word)]
	return id, ok
}

func isWeekday(id int) bool {
	return id >= KwSunday && id <= KwSaturday
}
