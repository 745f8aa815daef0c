package clock

import "time"

const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type RealClock struct {
	loc *time.Location
}

func NewRealClock() Clock {
	return &RealClock{loc: time.UTC}
}

// NewRealClockIn reports wall time in loc, which decides where "today" starts.
func NewRealClockIn(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// Today is the calendar date of c.Now() expressed as UTC midnight.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf drops the time-of-day, keeping the calendar date t shows in its own zone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysInclusive counts calendar days in [start, end]; zero when end precedes start.
func DaysInclusive(start, end time.Time) int64 {
	s, e := DateOf(start), DateOf(end)
	if e.Before(s) {
		return 0
	}
	return int64(e.Sub(s).Hours()/24) + 1
}
