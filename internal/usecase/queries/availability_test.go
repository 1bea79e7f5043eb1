//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ist = time.FixedZone("IST", 19800)

func newAvailability(ctrl *gomock.Controller, now time.Time) (queries.AvailabilityQueries, *queriesmock.MockServiceReadStore, *queriesmock.MockAppointmentReadStore) {
	services := queriesmock.NewMockServiceReadStore(ctrl)
	appointments := queriesmock.NewMockAppointmentReadStore(ctrl)
	q := queries.NewAvailabilityQueries(services, appointments,
		schedule.NewGenerator(schedule.DefaultWeeklyHours(), ist), clock.NewMockClock(now))
	return q, services, appointments
}

func TestAvailabilityQueries_ForService(t *testing.T) {
	ctx := context.Background()
	// Monday 2025-06-02 13:35 IST.
	now := time.Date(2025, time.June, 2, 8, 5, 0, 0, time.UTC)
	svc := builder.NewServiceBuilder().BuildView()

	t.Run("future date: whole day with booked slots flagged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, services, appointments := newAvailability(ctrl, now)
		wednesday := schedule.NewDate(2025, time.June, 4)

		services.EXPECT().FindByID(gomock.Any(), svc.ID).Return(svc, nil)
		appointments.EXPECT().ActiveBookingsOn(gomock.Any(), wednesday).Return([]schedule.Booking{
			{Date: wednesday, Slot: "10:00 AM - 11:00 AM", Active: true},
		}, nil)

		view, err := q.ForService(ctx, svc.ID, "2025-06-04")

		require.NoError(t, err)
		assert.Equal(t, "2025-06-04", view.Date)
		assert.Equal(t, 60, view.DurationMinutes)
		require.Len(t, view.Slots, 11)
		assert.Equal(t, "9:00 AM - 10:00 AM", view.Slots[0].Time)
		assert.Equal(t, "7:00 PM - 8:00 PM", view.Slots[10].Time)

		assert.Equal(t, schedule.Availability{Time: "10:00 AM - 11:00 AM", IsBooked: true, IsAvailable: false}, view.Slots[1])
		for i, s := range view.Slots {
			assert.False(t, s.IsPast, "slot %d", i)
			if i != 1 {
				assert.True(t, s.IsAvailable, "slot %d", i)
			}
		}
	})

	t.Run("today: grid starts after the lead time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, services, appointments := newAvailability(ctrl, now)

		services.EXPECT().FindByID(gomock.Any(), svc.ID).Return(svc, nil)
		appointments.EXPECT().ActiveBookingsOn(gomock.Any(), gomock.Any()).Return(nil, nil)

		view, err := q.ForService(ctx, svc.ID, "2025-06-02")

		require.NoError(t, err)
		got := make([]string, 0, len(view.Slots))
		for _, s := range view.Slots {
			got = append(got, s.Time)
			assert.True(t, s.IsAvailable)
		}
		assert.Equal(t, []string{
			"2:15 PM - 3:15 PM",
			"3:15 PM - 4:15 PM",
			"4:15 PM - 5:15 PM",
			"5:15 PM - 6:15 PM",
			"6:15 PM - 7:15 PM",
		}, got)
	})

	t.Run("error cases", func(t *testing.T) {
		cases := []struct {
			name  string
			date  string
			setup func(*queriesmock.MockServiceReadStore, *queriesmock.MockAppointmentReadStore)
			errIs error
		}{
			{name: "past date", date: "2025-06-01", errIs: appointment.ErrDateInPast},
			{name: "malformed date", date: "June 4", errIs: schedule.ErrInvalidDate},
			{
				name: "unknown service",
				date: "2025-06-04",
				setup: func(s *queriesmock.MockServiceReadStore, _ *queriesmock.MockAppointmentReadStore) {
					s.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.ClassifyPgErr("failed to find service", pgx.ErrNoRows))
				},
				errIs: shared.ErrServiceNotFound,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				q, services, appointments := newAvailability(ctrl, now)
				if c.setup != nil {
					c.setup(services, appointments)
				}

				_, err := q.ForService(ctx, uuid.New(), c.date)

				assert.True(t, errs.Is(err, c.errIs), "got %v", err)
			})
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q, services, appointments := newAvailability(ctrl, now)
		services.EXPECT().FindByID(gomock.Any(), svc.ID).Return(svc, nil)
		appointments.EXPECT().ActiveBookingsOn(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := q.ForService(ctx, svc.ID, "2025-06-04")

		require.Error(t, err)
		assert.Nil(t, errs.KindOf(err))
	})
}
