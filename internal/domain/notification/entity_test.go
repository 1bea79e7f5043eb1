//go:build unit

package notification_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/notification"
	"salon-booking/internal/domain/user"
	"salon-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

func TestCancelled_GoesToTheCounterpart(t *testing.T) {
	t.Run("customer cancels, staff are told", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()
		a, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, a.Cancel(user.NewActor(b.CustomerID, user.RoleCustomer, b.CustomerName), "Feeling unwell", now))

		n := notification.Cancelled(a, now)
		require.NotNil(t, n)
		assert.Equal(t, notification.AudienceStaff, n.Audience())
		assert.Equal(t, uuid.Nil, n.RecipientID())
		assert.Contains(t, n.Message(), "Feeling unwell")
		assert.Contains(t, n.Message(), b.CustomerName)
	})

	t.Run("salon cancels, customer is told", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()
		a, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, a.Cancel(user.NewActor(uuid.New(), user.RoleOwner, "Ravi Owner"), "Power outage", now))

		n := notification.Cancelled(a, now)
		require.NotNil(t, n)
		assert.Equal(t, notification.AudienceCustomer, n.Audience())
		assert.Equal(t, b.CustomerID, n.RecipientID())
		assert.Equal(t, notification.KindAppointmentCancelled, n.Kind())
		assert.Contains(t, n.Message(), "Ravi Owner")
		assert.Contains(t, n.Message(), "Power outage")
		assert.Contains(t, n.Message(), b.Slot)
	})

	t.Run("not cancelled", func(t *testing.T) {
		a, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, notification.Cancelled(a, now))
	})
}

func TestConfirmedAndBooked(t *testing.T) {
	b := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.Status = appointment.StatusConfirmed })
	a, err := b.BuildDomain()
	require.NoError(t, err)

	c := notification.Confirmed(a, now)
	assert.Equal(t, notification.AudienceCustomer, c.Audience())
	assert.Equal(t, a.ID(), c.AppointmentID())
	assert.Equal(t, now, c.CreatedAt())

	booked := notification.Booked(a, now)
	assert.Equal(t, notification.AudienceStaff, booked.Audience())
	assert.Contains(t, booked.Message(), b.ServiceName)
}
