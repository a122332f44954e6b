package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is Wednesday, March 5 2025, mid-morning.
var fixedNow = time.Date(2025, time.March, 5, 10, 30, 0, 0, time.UTC)

func testCalendar() Calendar {
	return NewCalendar(time.UTC, WithClock(func() time.Time { return fixedNow }))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarAllows(t *testing.T) {
	cal := testCalendar()

	assert.True(t, cal.Allows(day(2025, time.March, 5)), "today is bookable")
	assert.True(t, cal.Allows(day(2025, time.March, 6)))
	assert.False(t, cal.Allows(day(2025, time.March, 4)), "past dates are not offered")
	assert.False(t, cal.Allows(day(2024, time.December, 31)))
	assert.False(t, cal.Allows(day(2025, time.March, 10)), "closed on Mondays")
	assert.Equal(t, time.Monday, day(2025, time.March, 10).Weekday())
}

func TestCalendarTodayUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC on the 6th is still the evening of the 5th five hours west.
	cal := NewCalendar(loc, WithClock(func() time.Time {
		return time.Date(2025, time.March, 6, 2, 0, 0, 0, time.UTC)
	}))
	today := cal.Today()
	assert.Equal(t, 5, today.Day())
	assert.Equal(t, loc, today.Location())
}

func TestCalendarParse(t *testing.T) {
	cal := testCalendar()

	got, err := cal.Parse("2025-03-07")
	require.NoError(t, err)
	assert.True(t, got.Equal(day(2025, time.March, 7)))

	_, err = cal.Parse("2025-03-01")
	assert.ErrorIs(t, err, ErrDateUnavailable)

	_, err = cal.Parse("2025-03-10")
	assert.ErrorIs(t, err, ErrDateUnavailable)

	_, err = cal.Parse("03/07/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCalendarUpcoming(t *testing.T) {
	cal := testCalendar()
	days := cal.Upcoming(7)
	require.Len(t, days, 7)
	assert.True(t, days[0].Equal(day(2025, time.March, 5)))
	for _, d := range days {
		assert.NotEqual(t, ClosedWeekday, d.Weekday())
	}
	// Wed..Sun is five days, Monday is skipped, then Tue and Wed.
	assert.True(t, days[5].Equal(day(2025, time.March, 11)))
}

func TestCalendarMonth(t *testing.T) {
	cal := testCalendar()
	days := cal.Month(2025, time.March)
	require.Len(t, days, 31)

	assert.True(t, days[0].Disabled, "March 1 is in the past")
	assert.True(t, days[4].Today)
	assert.False(t, days[4].Disabled)
	assert.True(t, days[9].Disabled, "March 10 is a Monday")
	assert.Equal(t, "2025-03-10", days[9].Key())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "March 7, 2025", FormatDate(day(2025, time.March, 7)))
}
