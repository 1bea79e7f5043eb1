package appointment

import (
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/service"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory creates pending appointments. It checks everything that can be checked
// without storage; slot occupancy is left to the caller's transaction.
type Factory struct {
	clock clock.Clock
	slots *schedule.Generator
}

func NewFactory(c clock.Clock, slots *schedule.Generator) *Factory {
	return &Factory{clock: c, slots: slots}
}

func (f *Factory) Book(customer user.Actor, svc service.Snapshot, date schedule.Date, slot schedule.TimeRange) (*Appointment, error) {
	if customer.ID == uuid.Nil || !CanBook(customer.Role) {
		return nil, ErrBookForbidden
	}

	now := f.clock.Now()
	today := f.slots.Today(now)
	if date.Before(today) {
		return nil, ErrDateInPast
	}
	if date == today && !date.At(slot.Start(), f.slots.Location()).After(now) {
		return nil, ErrSlotInPast
	}

	offered, err := f.slots.Contains(date, svc.Duration, slot, now)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, ErrSlotNotOffered
	}

	return &Appointment{
		id:           uuid.New(),
		customerID:   customer.ID,
		customerName: customer.Name,
		service:      svc,
		date:         date,
		slot:         slot,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}
