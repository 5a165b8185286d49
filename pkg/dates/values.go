package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/TwirlySeal/duit/pkg/terrors"
	"github.com/TwirlySeal/duit/pkg/utils"
)

const (
	dateWireLen = len("2006-01-02")
)

// CalendarDate is a floating calendar date. Months are 1-indexed.
type CalendarDate struct{ civil.Date }

func NewDate(year, month, day int) CalendarDate {
	return CalendarDate{civil.Date{Year: year, Month: time.Month(month), Day: day}}
}

// DateOf takes the wall-clock date of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{civil.DateOf(t)}
}

// DaysBetween returns the whole number of days from a to b,
// counted on UTC midnights.
func DaysBetween(a, b CalendarDate) int {
	return b.Date.DaysSince(a.Date)
}

func (d CalendarDate) Equal(o CalendarDate) bool {
	return DaysBetween(d, o) == 0
}

// Compare orders dates by their UTC day count.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch diff := DaysBetween(o, d); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}
	return 0
}

func (d CalendarDate) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// Encode renders the date as YYYY-MM-DD.
func (d CalendarDate) Encode() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) String() string {
	return d.Encode()
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.Encode()), nil
}

func (d *CalendarDate) UnmarshalText(data []byte) error {
	var err error
	*d, err = DecodeDate(string(data))
	return err
}

func (d CalendarDate) MarshalYAML() (any, error) {
	return d.Encode(), nil
}

// ClockTime is a floating time of day.
type ClockTime struct{ civil.Time }

func NewTime(hour, minute, second int) ClockTime {
	return ClockTime{civil.Time{Hour: hour, Minute: minute, Second: second}}
}

func TimeOf(t time.Time) ClockTime {
	return NewTime(t.Hour(), t.Minute(), t.Second())
}

func (t ClockTime) Equal(o ClockTime) bool {
	return t.Hour == o.Hour && t.Minute == o.Minute && t.Second == o.Second
}

// Encode renders the time as HH:MM:SS.
func (t ClockTime) Encode() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t ClockTime) String() string {
	return t.Encode()
}

func (t ClockTime) MarshalText() ([]byte, error) {
	return []byte(t.Encode()), nil
}

func (t *ClockTime) UnmarshalText(data []byte) error {
	var err error
	*t, err = DecodeTime(string(data))
	return err
}

func (t ClockTime) MarshalYAML() (any, error) {
	return t.Encode(), nil
}

// EncodeDateTime renders the combined wire form "YYYY-MM-DD HH:MM:SS".
// A nil time yields the date-only form.
func EncodeDateTime(d CalendarDate, t *ClockTime) string {
	if t == nil {
		return d.Encode()
	}
	return d.Encode() + " " + t.Encode()
}

/*
DecodeDate splits a wire date on '-' and reads the fields positionally.
Ranges are not checked. Fields that are missing or not numbers are left at
zero and reported in the returned error; the date is returned regardless.
*/
func DecodeDate(s string) (CalendarDate, error) {
	vals, err := atoiFields(splitWire(s, "-"), 3)
	return NewDate(vals[0], vals[1], vals[2]), err
}

// DecodeTime is the HH:MM:SS counterpart of DecodeDate.
func DecodeTime(s string) (ClockTime, error) {
	vals, err := atoiFields(splitWire(s, ":"), 3)
	return NewTime(vals[0], vals[1], vals[2]), err
}

// DecodeDateTime branches on length only: anything longer than a wire date
// is read as "YYYY-MM-DD HH:MM:SS", anything else as a plain date.
func DecodeDateTime(s string) (CalendarDate, *ClockTime, error) {
	if utils.RuneCount(s) <= dateWireLen {
		d, err := DecodeDate(s)
		return d, nil, err
	}
	vals, err := atoiFields(splitWire(s, "- :"), 6)
	t := NewTime(vals[3], vals[4], vals[5])
	return NewDate(vals[0], vals[1], vals[2]), &t, err
}

// splitWire splits on any of seps, keeping empty fields so that positions hold.
func splitWire(s, seps string) []string {
	var parts []string
	last := 0
	for i, r := range s {
		if strings.ContainsRune(seps, r) {
			parts = append(parts, s[last:i])
			last = i + 1
		}
	}
	return append(parts, s[last:])
}

func atoiFields(parts []string, n int) ([]int, error) {
	vals := make([]int, n)
	var errs []error
	for ndx := range n {
		if ndx >= len(parts) {
			errs = append(errs, fmt.Errorf("%w: field %d missing", terrors.ErrParse, ndx))
			continue
		}
		val, err := strconv.Atoi(parts[ndx])
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %w: field %d '%s'", terrors.ErrParse, terrors.ErrValue, ndx, parts[ndx]))
			continue
		}
		vals[ndx] = val
	}
	return vals, errors.Join(errs...)
}
