package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityView struct {
	ServiceID       uuid.UUID               `json:"serviceId"`
	ServiceName     string                  `json:"serviceName"`
	Date            string                  `json:"date"`
	DurationMinutes int                     `json:"durationMinutes"`
	Slots           []schedule.Availability `json:"slots"`
}

type AvailabilityQueries interface {
	ForService(ctx context.Context, serviceID uuid.UUID, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	services     ServiceReadStore
	appointments AppointmentReadStore
	slots        *schedule.Generator
	clock        clock.Clock
}

func NewAvailabilityQueries(services ServiceReadStore, appointments AppointmentReadStore, slots *schedule.Generator, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		services:     services,
		appointments: appointments,
		slots:        slots,
		clock:        clk,
	}
}

// ForService lists every slot of the day with its booked and past flags, so a
// client can grey out what it cannot book. Dates before today are rejected.
func (q *availabilityQueriesImpl) ForService(ctx context.Context, serviceID uuid.UUID, date string) (*AvailabilityView, error) {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	if d.Before(q.slots.Today(now)) {
		return nil, appointment.ErrDateInPast
	}

	svc, err := q.services.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrServiceNotFound
		}
		return nil, err
	}

	bookings, err := q.appointments.ActiveBookingsOn(ctx, d)
	if err != nil {
		return nil, err
	}

	slots, err := q.slots.Availability(d, time.Duration(svc.DurationMinutes)*time.Minute, bookings, now)
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		Date:            d.String(),
		DurationMinutes: svc.DurationMinutes,
		Slots:           slots,
	}, nil
}
