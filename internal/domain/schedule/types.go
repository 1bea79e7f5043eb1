package schedule

import (
	"fmt"
	"strings"
	"time"

	"salon-booking/internal/pkg/errs"
)

var (
	ErrInvalidDate      = errs.Kind("date must be in YYYY-MM-DD format", errs.ErrInvalidInput)
	ErrInvalidTimeRange = errs.Kind("slot must look like \"9:00 AM - 10:00 AM\"", errs.ErrInvalidInput)
	ErrInvalidDuration  = errs.Kind("service duration must be a positive number of minutes", errs.ErrInvalidInput)
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time or zone component.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), time.UTC)
}

// DateOf returns the calendar date of t as seen from loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t, time.UTC), nil
}

func (d Date) Year() int             { return d.year }
func (d Date) Month() time.Month     { return d.month }
func (d Date) Day() int              { return d.day }
func (d Date) IsZero() bool          { return d == Date{} }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Time is midnight UTC of the date, the form dates are stored in.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// At is the wall-clock instant at the given time of day in loc.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, int(t), 0, 0, loc)
}

func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n), time.UTC)
}

// TimeOfDay counts minutes since local midnight.
type TimeOfDay int

func At(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String renders a 12-hour clock: "9:00 AM", "12:30 PM", "12:00 AM".
func (t TimeOfDay) String() string {
	h := t.Hour() % 24
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	if h%12 == 0 {
		h = 12
	} else {
		h %= 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), period)
}

func parseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return 0, err
	}
	return At(t.Hour(), t.Minute()), nil
}

// TimeRange is a half-open [start, end) window within one day.
type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

const rangeSeparator = " - "

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if start < 0 || end <= start {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

// ParseTimeRange reads the label form produced by String.
func ParseTimeRange(label string) (TimeRange, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return TimeRange{}, ErrInvalidTimeRange
	}
	start, err := parseTimeOfDay(parts[0])
	if err != nil {
		return TimeRange{}, ErrInvalidTimeRange
	}
	end, err := parseTimeOfDay(parts[1])
	if err != nil {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return NewTimeRange(start, end)
}

func (r TimeRange) Start() TimeOfDay { return r.start }
func (r TimeRange) End() TimeOfDay   { return r.end }

func (r TimeRange) Duration() time.Duration {
	return time.Duration(r.end-r.start) * time.Minute
}

func (r TimeRange) String() string {
	return r.start.String() + rangeSeparator + r.end.String()
}
