package schedule

import "time"

// Booking is the part of an existing appointment the resolver needs.
type Booking struct {
	Date   Date
	Slot   string
	Active bool
}

type Availability struct {
	Time        string `json:"time"`
	IsBooked    bool   `json:"isBooked"`
	IsPast      bool   `json:"isPast"`
	IsAvailable bool   `json:"isAvailable"`
}

// Resolve classifies each slot against the active bookings of date. Only pending
// and confirmed appointments occupy a slot; past-ness applies to today only and
// uses the same lead time as generation.
func Resolve(slots []TimeRange, date Date, bookings []Booking, now time.Time, loc *time.Location) []Availability {
	taken := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.Active && b.Date == date {
			taken[b.Slot] = struct{}{}
		}
	}

	isToday := date == DateOf(now, loc)
	cutoff := now.Add(LeadTime)

	out := make([]Availability, 0, len(slots))
	for _, s := range slots {
		label := s.String()
		_, booked := taken[label]
		past := isToday && !date.At(s.Start(), loc).After(cutoff)
		out = append(out, Availability{
			Time:        label,
			IsBooked:    booked,
			IsPast:      past,
			IsAvailable: !booked && !past,
		})
	}
	return out
}

// Availability generates the day's slots and resolves them in one step.
func (g *Generator) Availability(date Date, duration time.Duration, bookings []Booking, now time.Time) ([]Availability, error) {
	slots, err := g.Generate(date, duration, now)
	if err != nil {
		return nil, err
	}
	return Resolve(slots, date, bookings, now, g.loc), nil
}
