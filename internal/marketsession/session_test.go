package marketsession_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrdo/hunt/internal/marketsession"
)

func nyTime(t *testing.T, year int, month time.Month, day, hour, min, sec int) time.Time {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err, "should have loaded timezone America/New_York")
	return time.Date(year, month, day, hour, min, sec, 0, ny)
}

func TestResolveOpenSession(t *testing.T) {
	// Friday 2024-06-28 15:00 ET: one hour to the 16:00 close.
	status := marketsession.Resolve(nyTime(t, 2024, 6, 28, 15, 0, 0))

	assert.Equal(t, marketsession.StateOpen, status.State)
	assert.Equal(t, "Closes in", status.Label)
	assert.Equal(t, 3600, status.CountdownSeconds)
	assert.Equal(t, "01:00:00", status.Countdown)
	assert.Empty(t, status.HolidayName)
}

func TestResolveHolidayOverridesTradingHours(t *testing.T) {
	// Independence Day 2024 is a Thursday. 10:00 is within normal trading
	// hours, but the holiday check outranks the clock.
	status := marketsession.Resolve(nyTime(t, 2024, 7, 4, 10, 0, 0))

	assert.Equal(t, marketsession.StateClosed, status.State)
	assert.Equal(t, "Independence Day", status.HolidayName)
	// Next trading day is Friday Jul 5: seconds to midnight plus 9.5h.
	assert.Equal(t, (86400-10*3600)+9*3600+30*60, status.CountdownSeconds)
	assert.Contains(t, status.NextOpen, "Friday, Jul 5")
}

func TestResolveOpensLaterToday(t *testing.T) {
	// Friday 2024-06-28 08:00 ET: opens in 90 minutes.
	status := marketsession.Resolve(nyTime(t, 2024, 6, 28, 8, 0, 0))

	assert.Equal(t, marketsession.StateClosed, status.State)
	assert.Equal(t, "Opens in", status.Label)
	assert.Equal(t, 5400, status.CountdownSeconds)
	assert.Equal(t, "Today 9:30 AM ET", status.NextOpen)
}

func TestResolveWeekendScansToMonday(t *testing.T) {
	// Saturday 2024-06-29 12:00 ET: next session is Monday Jul 1 09:30.
	status := marketsession.Resolve(nyTime(t, 2024, 6, 29, 12, 0, 0))

	assert.Equal(t, marketsession.StateClosed, status.State)
	// 12h to midnight + 1 full day (Sunday) + 9.5h into Monday.
	assert.Equal(t, 12*3600+86400+9*3600+30*60, status.CountdownSeconds)
	assert.Contains(t, status.NextOpen, "Monday, Jul 1")
}

func TestResolveForwardScanSkipsMondayHoliday(t *testing.T) {
	// Friday 2025-01-17 20:00 ET. Monday Jan 20 is MLK Day, so the forward
	// scan must land on Tuesday Jan 21, not Monday.
	status := marketsession.Resolve(nyTime(t, 2025, 1, 17, 20, 0, 0))

	assert.Equal(t, marketsession.StateClosed, status.State)
	assert.Contains(t, status.NextOpen, "Tuesday, Jan 21")
	// 4h to midnight + 3 full days (Sat, Sun, Mon) + 9.5h into Tuesday.
	assert.Equal(t, 4*3600+3*86400+9*3600+30*60, status.CountdownSeconds)
}

func TestResolveHalfDayEarlyClose(t *testing.T) {
	// Friday 2023-11-24, the day after Thanksgiving: 13:00 close.
	status := marketsession.Resolve(nyTime(t, 2023, 11, 24, 12, 30, 0))

	assert.Equal(t, marketsession.StateOpen, status.State)
	assert.True(t, status.HalfDay)
	assert.Equal(t, "Closes early in", status.Label)
	assert.Equal(t, 1800, status.CountdownSeconds)
	assert.Equal(t, "Early Close", status.HolidayName)
}

func TestResolveCountdownNeverNegative(t *testing.T) {
	boundaries := []time.Time{
		nyTime(t, 2024, 6, 28, 9, 30, 0),  // exactly at open
		nyTime(t, 2024, 6, 28, 16, 0, 0),  // exactly at close
		nyTime(t, 2023, 11, 24, 13, 0, 0), // exactly at half-day close
		nyTime(t, 2024, 6, 29, 23, 59, 59),
		nyTime(t, 2024, 12, 31, 23, 59, 59),
	}
	for _, now := range boundaries {
		status := marketsession.Resolve(now)
		assert.GreaterOrEqual(t, status.CountdownSeconds, 0, "countdown negative at %v", now)
	}

	// Exactly at open is an open session with the full day remaining.
	atOpen := marketsession.Resolve(nyTime(t, 2024, 6, 28, 9, 30, 0))
	assert.Equal(t, marketsession.StateOpen, atOpen.State)
	assert.Equal(t, 6*3600+30*60, atOpen.CountdownSeconds)

	// Exactly at close is already closed, counting to Monday.
	atClose := marketsession.Resolve(nyTime(t, 2024, 6, 28, 16, 0, 0))
	assert.Equal(t, marketsession.StateClosed, atClose.State)
}

func TestIsTradingDay(t *testing.T) {
	assert.True(t, marketsession.IsTradingDay(nyTime(t, 2024, 6, 28, 12, 0, 0)))  // Friday
	assert.False(t, marketsession.IsTradingDay(nyTime(t, 2024, 6, 29, 12, 0, 0))) // Saturday
	assert.False(t, marketsession.IsTradingDay(nyTime(t, 2024, 7, 4, 12, 0, 0)))  // holiday
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "00:00:00", marketsession.FormatCountdown(-5))
	assert.Equal(t, "00:00:00", marketsession.FormatCountdown(0))
	assert.Equal(t, "01:01:01", marketsession.FormatCountdown(3661))
	assert.Equal(t, "27:30:00", marketsession.FormatCountdown(99000))
}
