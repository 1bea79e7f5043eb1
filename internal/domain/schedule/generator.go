package schedule

import (
	"time"
)

const (
	// LeadTime is the minimum gap between now and the earliest bookable start today.
	LeadTime = 30 * time.Minute

	roundingStep = 15
)

// Generator produces the bookable slots of a day in the salon's time zone.
type Generator struct {
	hours WeeklyHours
	loc   *time.Location
}

func NewGenerator(hours WeeklyHours, loc *time.Location) *Generator {
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{hours: hours, loc: loc}
}

func (g *Generator) Location() *time.Location {
	return g.loc
}

func (g *Generator) Hours(date Date) Hours {
	return g.hours.On(date.Weekday())
}

// Today is now's calendar date in the salon's zone.
func (g *Generator) Today(now time.Time) Date {
	return DateOf(now, g.loc)
}

// Generate returns back-to-back slots of the given duration from opening time,
// dropping any slot that would run past closing. On today's date the first slot
// starts no earlier than now plus LeadTime, rounded up to the next quarter hour.
func (g *Generator) Generate(date Date, duration time.Duration, now time.Time) ([]TimeRange, error) {
	step := TimeOfDay(duration / time.Minute)
	if step <= 0 {
		return nil, ErrInvalidDuration
	}

	hours := g.Hours(date)
	if hours.IsClosed() {
		return []TimeRange{}, nil
	}

	start := hours.Open
	if date == g.Today(now) {
		earliest, ok := g.earliestStart(now)
		if !ok {
			return []TimeRange{}, nil
		}
		if earliest > start {
			start = earliest
		}
	}

	slots := []TimeRange{}
	for cur := start; cur+step <= hours.Close; cur += step {
		slots = append(slots, TimeRange{start: cur, end: cur + step})
	}
	return slots, nil
}

// Contains reports whether slot is one of the slots Generate would return right now.
func (g *Generator) Contains(date Date, duration time.Duration, slot TimeRange, now time.Time) (bool, error) {
	slots, err := g.Generate(date, duration, now)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s == slot {
			return true, nil
		}
	}
	return false, nil
}

// earliestStart is false when the lead time already reaches into tomorrow.
func (g *Generator) earliestStart(now time.Time) (TimeOfDay, bool) {
	local := now.In(g.loc)
	buffered := local.Add(LeadTime)
	if DateOf(buffered, g.loc) != DateOf(local, g.loc) {
		return 0, false
	}
	minutes := buffered.Hour()*60 + buffered.Minute()
	rounded := (minutes + roundingStep - 1) / roundingStep * roundingStep
	return TimeOfDay(rounded), true
}
