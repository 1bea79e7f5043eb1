//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := schedule.ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, monday, d)
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2025-06-02", d.String())

	for _, bad := range []string{"", "02/06/2025", "2025-13-01", "2025-06-31", "tomorrow"} {
		_, err := schedule.ParseDate(bad)
		assert.True(t, errs.Is(err, schedule.ErrInvalidDate), bad)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput), bad)
	}
}

func TestDateOf_UsesZone(t *testing.T) {
	// 20:00 UTC on Sunday is already Monday in IST.
	instant := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, schedule.DateOf(instant, ist))
	assert.Equal(t, schedule.NewDate(2025, time.June, 1), schedule.DateOf(instant, time.UTC))
}

func TestTimeOfDay_String(t *testing.T) {
	cases := map[schedule.TimeOfDay]string{
		schedule.At(0, 0):   "12:00 AM",
		schedule.At(9, 5):   "9:05 AM",
		schedule.At(11, 59): "11:59 AM",
		schedule.At(12, 0):  "12:00 PM",
		schedule.At(13, 30): "1:30 PM",
		schedule.At(20, 0):  "8:00 PM",
	}
	for tod, want := range cases {
		assert.Equal(t, want, tod.String())
	}
}

func TestParseTimeRange(t *testing.T) {
	r, err := schedule.ParseTimeRange("11:30 AM - 12:15 PM")
	require.NoError(t, err)
	assert.Equal(t, schedule.At(11, 30), r.Start())
	assert.Equal(t, schedule.At(12, 15), r.End())
	assert.Equal(t, 45*time.Minute, r.Duration())
	assert.Equal(t, "11:30 AM - 12:15 PM", r.String())

	lower, err := schedule.ParseTimeRange("9:00 am - 10:00 am")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM - 10:00 AM", lower.String())

	for _, bad := range []string{"", "9:00 AM", "10:00 AM - 9:00 AM", "9:00 AM - 9:00 AM", "25:00 - 26:00", "9 AM - 10 AM"} {
		_, err := schedule.ParseTimeRange(bad)
		assert.True(t, errs.Is(err, schedule.ErrInvalidTimeRange), bad)
	}
}
