package clock

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDay = errors.New("invalid calendar day")

const dayLayout = "2006-01-02"

// Day is a civil date without time-of-day or zone.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return DayOf(t), nil
}

func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Day) IsZero() bool {
	return d == Day{}
}

// Start returns local midnight of the day in loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) Next() Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, time.UTC))
}

// Calendar answers "is it still the same day" questions in a fixed location.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc}
}

// Location falls back to time.Local for the zero Calendar.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

func (c Calendar) Day(t time.Time) Day {
	return DayOf(t.In(c.Location()))
}

// IsFresh reports whether last falls on the same calendar day as now.
// A missing timestamp is never fresh.
func (c Calendar) IsFresh(last *time.Time, now time.Time) bool {
	if last == nil || last.IsZero() {
		return false
	}
	return c.Day(*last) == c.Day(now)
}

// UntilNextBoundary is the time left until the next local midnight.
func (c Calendar) UntilNextBoundary(now time.Time) time.Duration {
	next := c.Day(now).Next().Start(c.Location())
	return next.Sub(now)
}
