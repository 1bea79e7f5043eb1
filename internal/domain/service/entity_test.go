//go:build unit

package service_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/service"
	"salon-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuration(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		want    time.Duration
		errIs   error
	}{
		{name: "missing duration defaults to an hour", minutes: 0, want: time.Hour},
		{name: "thirty minutes", minutes: 30, want: 30 * time.Minute},
		{name: "negative", minutes: -15, errIs: service.ErrInvalidDuration},
		{name: "too short", minutes: 4, errIs: service.ErrInvalidDuration},
		{name: "longer than a day's hours", minutes: 721, errIs: service.ErrInvalidDuration},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := service.NewDuration(c.minutes)
			if c.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, c.errIs))
				assert.True(t, errs.Is(err, errs.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, d.Value())
		})
	}
}

func TestNewName(t *testing.T) {
	n, err := service.NewName("  Hair Cut ")
	require.NoError(t, err)
	assert.Equal(t, "Hair Cut", n.String())

	_, err = service.NewName("   ")
	assert.True(t, errs.Is(err, service.ErrInvalidName))
}

func TestNewMoney(t *testing.T) {
	m, err := service.NewMoney(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Amount())

	_, err = service.NewMoney(-1)
	assert.True(t, errs.Is(err, service.ErrNegativePrice))
}

func TestService_SnapshotIsACopy(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	name, _ := service.NewName("Facial")
	dur, _ := service.NewDuration(45)
	price, _ := service.NewMoney(800)
	svc := service.NewService(name, dur, price, "", now)

	snap := svc.Snapshot()

	newName, _ := service.NewName("Deluxe Facial")
	newPrice, _ := service.NewMoney(1200)
	svc.Update(newName, dur, newPrice, "with massage", now.Add(time.Hour))

	assert.Equal(t, "Facial", snap.Name)
	assert.Equal(t, int64(800), snap.Price)
	assert.Equal(t, 45*time.Minute, snap.Duration)
	assert.Equal(t, "Deluxe Facial", svc.Name().String())
	assert.Equal(t, now.Add(time.Hour), svc.UpdatedAt())
}
