package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Monday
var testNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

func testParser(opts ...Option) *Parser {
	return NewParser(append([]Option{WithClock(FixedClock(testNow))}, opts...)...)
}

func at(hour int) *ClockTime {
	t := NewTime(hour, 0, 0)
	return &t
}

func TestParse(t *testing.T) {
	assert := assert.New(t)
	p := testParser()
	today := NewDate(2026, 10, 19)

	tests := []struct {
		name string
		text string
		want []Expression
	}{
		{"plain text", "buy milk", nil},
		{"empty", "", nil},
		{"today", "today", []Expression{{Start: 0, End: 5, Date: today}}},
		{"tomorrow", "Tomorrow", []Expression{{Start: 0, End: 8, Date: NewDate(2026, 10, 20)}}},
		{"someday", "someday", []Expression{{Start: 0, End: 7, Date: NewDate(2026, 12, 19)}}},
		{"weekday is strictly future", "monday", []Expression{{Start: 0, End: 6, Date: NewDate(2026, 10, 26)}}},
		{"sunday", "sunday", []Expression{{Start: 0, End: 6, Date: NewDate(2026, 10, 25)}}},
		{"tomorrow 6am", "tomorrow 6am", []Expression{{Start: 0, End: 12, Date: NewDate(2026, 10, 20), Time: at(6)}}},
		{"bare time defaults to today", "6pm", []Expression{{Start: 0, End: 3, Date: today, Time: at(18)}}},
		{"zero splits the hour", "10am", []Expression{{Start: 0, End: 4, Date: today, Time: at(1)}}},
		{"12pm overflows", "12pm", []Expression{{Start: 0, End: 4, Date: today, Time: at(24)}}},
		{"next week", "next week", []Expression{{Start: 0, End: 9, Date: NewDate(2026, 10, 26)}}},
		{"next month", "call next month", []Expression{{Start: 5, End: 15, Date: NewDate(2026, 11, 19)}}},
		{"next year", "next year", []Expression{{Start: 0, End: 9, Date: NewDate(2027, 10, 19)}}},
		{
			"embedded in a title", "buy milk next friday 6pm",
			[]Expression{{Start: 14, End: 24, Date: NewDate(2026, 10, 23), Time: at(18)}},
		},
		{
			"text splits expressions", "meeting friday and monday",
			[]Expression{
				{Start: 8, End: 14, Date: NewDate(2026, 10, 23)},
				{Start: 19, End: 25, Date: NewDate(2026, 10, 26)},
			},
		},
		{
			"second date flushes", "friday monday",
			[]Expression{
				{Start: 0, End: 6, Date: NewDate(2026, 10, 23)},
				{Start: 7, End: 13, Date: NewDate(2026, 10, 26)},
			},
		},
		{"dangling next", "call mom next", nil},
		{"dangling next keeps earlier", "friday next", []Expression{{Start: 0, End: 6, Date: NewDate(2026, 10, 23)}}},
		{"dangling number keeps earlier", "tomorrow 6", []Expression{{Start: 0, End: 8, Date: NewDate(2026, 10, 20)}}},
		{"abandoned number then text", "tomorrow 6 apples", []Expression{{Start: 0, End: 8, Date: NewDate(2026, 10, 20)}}},
		{"abandoned number then number", "5 6pm", []Expression{{Start: 2, End: 5, Date: today, Time: at(18)}}},
		{"number swallows a keyword", "6 friday", nil},
		{"next then next", "next next week", []Expression{{Start: 5, End: 14, Date: NewDate(2026, 10, 26)}}},
		{"next before a number", "next 11", nil},
		{"numbers are not units after next", "next 12", nil},
		{"number 13 after next", "next 13", nil},
		{"lone week keyword", "week", nil},
		{"time then date merge", "6pm friday", []Expression{{Start: 0, End: 10, Date: NewDate(2026, 10, 23), Time: at(18)}}},
		{
			"two times", "6pm 7pm",
			[]Expression{
				{Start: 0, End: 3, Date: today, Time: at(18)},
				{Start: 4, End: 7, Date: today, Time: at(19)},
			},
		},
		{"date-opened window takes a later time", "friday 6pm 7pm", []Expression{{Start: 0, End: 14, Date: NewDate(2026, 10, 23), Time: at(19)}}},
		{"time-opened window takes later dates", "6pm friday saturday", []Expression{{Start: 0, End: 19, Date: NewDate(2026, 10, 24), Time: at(18)}}},
		{
			"date after a merged time flushes", "friday 6pm friday",
			[]Expression{
				{Start: 0, End: 10, Date: NewDate(2026, 10, 23), Time: at(18)},
				{Start: 11, End: 17, Date: NewDate(2026, 10, 23)},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(tc.want, p.Parse(tc.text), tc.text)
		})
	}
}

func TestParseStrictFlush(t *testing.T) {
	assert := assert.New(t)
	p := testParser(WithFlushPolicy(StrictFlush))

	assert.Equal([]Expression{
		{Start: 0, End: 10, Date: NewDate(2026, 10, 23), Time: at(18)},
		{Start: 11, End: 14, Date: NewDate(2026, 10, 19), Time: at(19)},
	}, p.Parse("friday 6pm 7pm"))

	assert.Equal([]Expression{
		{Start: 0, End: 10, Date: NewDate(2026, 10, 23), Time: at(18)},
		{Start: 11, End: 19, Date: NewDate(2026, 10, 24)},
	}, p.Parse("6pm friday saturday"))

	assert.Equal([]Expression{
		{Start: 0, End: 12, Date: NewDate(2026, 10, 20), Time: at(6)},
	}, p.Parse("tomorrow 6am"))
}

func TestParseOrdering(t *testing.T) {
	assert := assert.New(t)
	inputs := []string{
		"today tomorrow 6pm 7am next week next month someday",
		"6pm 7pm 8pm friday saturday sunday",
		"next next next year 1 2 3am monday x 4pm",
		"a 5pm b tomorrow c next d year e 9am",
	}
	for _, policy := range []FlushPolicy{ObservedFlush, StrictFlush} {
		p := testParser(WithFlushPolicy(policy))
		for _, in := range inputs {
			exprs := p.Parse(in)
			assert.NotEmpty(exprs, in)
			for ndx, expr := range exprs {
				assert.Less(expr.Start, expr.End, in)
				if ndx > 0 {
					assert.LessOrEqual(exprs[ndx-1].End, expr.Start, in)
				}
			}
		}
	}
}

func TestParseSystemClock(t *testing.T) {
	assert := assert.New(t)
	before := DateOf(time.Now())
	exprs := Parse("today")
	after := DateOf(time.Now())
	if assert.Len(exprs, 1) {
		assert.Nil(exprs[0].Time)
		// a midnight tick between the reads is the only way these differ
		assert.True(exprs[0].Date.Equal(before) || exprs[0].Date.Equal(after))
	}
}

func TestFlushPolicies(t *testing.T) {
	assert := assert.New(t)

	assert.True(ObservedFlush(MergeState{Window: WindowDate, DateSet: true}, EventDate))
	assert.False(ObservedFlush(MergeState{Window: WindowDate, DateSet: true, TimeSet: true}, EventTime))
	assert.True(ObservedFlush(MergeState{Window: WindowDateTime, TimeSet: true}, EventTime))
	assert.False(ObservedFlush(MergeState{Window: WindowDateTime, TimeSet: true}, EventDate))

	assert.True(StrictFlush(MergeState{Window: WindowDate, DateSet: true, TimeSet: true}, EventTime))
	assert.False(StrictFlush(MergeState{Window: WindowDateTime, TimeSet: true}, EventDate))

	p, err := PolicyByName("strict")
	assert.NoError(err)
	assert.NotNil(p)
	_, err = PolicyByName("lenient")
	assert.Error(err)
}
