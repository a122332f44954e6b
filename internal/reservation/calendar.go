package reservation

import (
	"fmt"
	"time"
)

// ClosedWeekday is the day of the week the restaurant does not take reservations.
const ClosedWeekday = time.Monday

const (
	// DateLayout is the wire format for dates posted by the picker.
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format for picker month navigation.
	MonthLayout = "2006-01"

	dateDisplay = "January 2, 2006"
)

// Calendar decides which dates the picker offers. A date is offered when it is
// today or later in the restaurant's location and does not fall on ClosedWeekday.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// CalendarOption configures a Calendar.
type CalendarOption func(*Calendar)

// WithClock overrides the source of "now", mostly for tests.
func WithClock(now func() time.Time) CalendarOption {
	return func(c *Calendar) {
		c.now = now
	}
}

// NewCalendar creates a calendar for the given location. A nil location means UTC.
func NewCalendar(loc *time.Location, opts ...CalendarOption) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	c := Calendar{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Location returns the restaurant's time zone.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Today returns midnight of the current day in the restaurant's location.
func (c Calendar) Today() time.Time {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return midnight(now(), c.Location())
}

// Allows reports whether d can be reserved.
func (c Calendar) Allows(d time.Time) bool {
	day := midnight(d, c.Location())
	if day.Before(c.Today()) {
		return false
	}
	return day.Weekday() != ClosedWeekday
}

// Parse reads a picker date ("2006-01-02") in the restaurant's location and
// rejects dates the picker would never offer.
func (c Calendar) Parse(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, c.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if !c.Allows(d) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateUnavailable, s)
	}
	return d, nil
}

// Upcoming lists the next n reservable dates, starting today.
func (c Calendar) Upcoming(n int) []time.Time {
	out := make([]time.Time, 0, n)
	for d := c.Today(); len(out) < n; d = d.AddDate(0, 0, 1) {
		if c.Allows(d) {
			out = append(out, d)
		}
	}
	return out
}

// Day is one cell of the picker grid.
type Day struct {
	Date     time.Time
	Disabled bool
	Today    bool
}

// Key returns the wire value of the day.
func (d Day) Key() string {
	return d.Date.Format(DateLayout)
}

// Month returns one Day per calendar day of the month. Callers offset the
// grid by the first day's weekday.
func (c Calendar) Month(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, c.Location())
	today := c.Today()
	var days []Day
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:     d,
			Disabled: !c.Allows(d),
			Today:    d.Equal(today),
		})
	}
	return days
}

// FormatDate renders a date the way guests see it ("March 4, 2025").
func FormatDate(d time.Time) string {
	return d.Format(dateDisplay)
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
