package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert := assert.New(t)
	clock := FixedClock(testNow)

	assert.Equal("Today", Format(clock, NewDate(2026, 10, 19)))
	assert.Equal("Tomorrow", Format(clock, NewDate(2026, 10, 20)))
	assert.Equal("Wednesday", Format(clock, NewDate(2026, 10, 21)))
	assert.Equal("Friday", Format(clock, NewDate(2026, 10, 23)))
	assert.Equal("Monday", Format(clock, NewDate(2026, 10, 26)))
	assert.Equal("27 Oct 2026", Format(clock, NewDate(2026, 10, 27)))
	assert.Equal("5 Jan 2027", Format(clock, NewDate(2027, 1, 5)))

	t.Run("past dates", func(t *testing.T) {
		assert.Equal("18 Oct 2026", Format(clock, NewDate(2026, 10, 18)))
		assert.Equal("1 Jan 2020", Format(clock, NewDate(2020, 1, 1)))
	})

	t.Run("with time", func(t *testing.T) {
		tm := NewTime(18, 30, 0)
		assert.Equal("Friday 18:30", FormatDateTime(clock, NewDate(2026, 10, 23), &tm))
		assert.Equal("Today", FormatDateTime(clock, NewDate(2026, 10, 19), nil))
	})
}
