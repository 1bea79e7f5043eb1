package schedule

import "time"

// Hours are the opening and closing times of one weekday. Close <= Open means closed.
type Hours struct {
	Open  TimeOfDay
	Close TimeOfDay
}

func (h Hours) IsClosed() bool {
	return h.Close <= h.Open
}

// WeeklyHours is indexed by time.Weekday.
type WeeklyHours [7]Hours

func DefaultWeeklyHours() WeeklyHours {
	weekday := Hours{Open: At(9, 0), Close: At(20, 0)}
	return WeeklyHours{
		time.Sunday:    {Open: At(10, 0), Close: At(17, 0)},
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
		time.Saturday:  {Open: At(9, 0), Close: At(18, 0)},
	}
}

func (w WeeklyHours) On(day time.Weekday) Hours {
	return w[day]
}
