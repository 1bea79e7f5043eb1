//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/service"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Book(t *testing.T) {
	// Monday 2025-06-02, 11:10 UTC.
	monday := schedule.NewDate(2025, time.June, 2)
	clk := clock.NewMockClock(monday.At(schedule.At(11, 10), time.UTC))
	factory := appointment.NewFactory(clk, schedule.NewGenerator(schedule.DefaultWeeklyHours(), time.UTC))

	customer := user.NewActor(uuid.New(), user.RoleCustomer, "Priya Sharma")
	haircut := service.Snapshot{ID: uuid.New(), Name: "Haircut", Duration: time.Hour, Price: 500}

	cases := []struct {
		name  string
		by    user.Actor
		date  schedule.Date
		slot  string
		errIs error
	}{
		{name: "tomorrow at opening", by: customer, date: monday.AddDays(1), slot: "9:00 AM - 10:00 AM"},
		{name: "later today on the shifted grid", by: customer, date: monday, slot: "12:45 PM - 1:45 PM"},
		{name: "yesterday", by: customer, date: monday.AddDays(-1), slot: "9:00 AM - 10:00 AM", errIs: appointment.ErrDateInPast},
		{name: "today already started", by: customer, date: monday, slot: "11:00 AM - 12:00 PM", errIs: appointment.ErrSlotInPast},
		{name: "today inside the lead time", by: customer, date: monday, slot: "11:15 AM - 12:15 PM", errIs: appointment.ErrSlotNotOffered},
		{name: "wrong length for the service", by: customer, date: monday.AddDays(1), slot: "9:00 AM - 9:30 AM", errIs: appointment.ErrSlotNotOffered},
		{name: "after closing", by: customer, date: monday.AddDays(1), slot: "8:00 PM - 9:00 PM", errIs: appointment.ErrSlotNotOffered},
		{name: "anonymous actor", by: user.Actor{Role: user.RoleCustomer}, date: monday.AddDays(1), slot: "9:00 AM - 10:00 AM", errIs: appointment.ErrBookForbidden},
		{name: "unknown role", by: user.NewActor(uuid.New(), user.Role("guest"), "Guest"), date: monday.AddDays(1), slot: "9:00 AM - 10:00 AM", errIs: appointment.ErrBookForbidden},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot, err := schedule.ParseTimeRange(c.slot)
			require.NoError(t, err)

			a, err := factory.Book(c.by, haircut, c.date, slot)

			if c.errIs != nil {
				require.Error(t, err)
				assert.Nil(t, a)
				assert.True(t, errs.Is(err, c.errIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, appointment.StatusPending, a.Status())
			assert.Equal(t, customer.ID, a.CustomerID())
			assert.Equal(t, "Priya Sharma", a.CustomerName())
			assert.Equal(t, haircut, a.Service())
			assert.Equal(t, c.slot, a.Slot().String())
			assert.Equal(t, clk.Now(), a.CreatedAt())
			assert.Nil(t, a.Cancellation())
			assert.Nil(t, a.Feedback())
		})
	}
}
