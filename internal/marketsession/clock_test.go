package marketsession_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrdo/hunt/internal/marketsession"
)

func TestDecomposeInZone(t *testing.T) {
	testCases := []struct {
		name     string
		instant  time.Time
		zone     string
		expected marketsession.WallClock
	}{
		{
			name:    "winter UTC offset is -5",
			instant: time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
			zone:    "America/New_York",
			expected: marketsession.WallClock{
				Year: 2024, Month: time.January, Day: 15,
				Hour: 10, Minute: 0, Second: 0, Weekday: time.Monday,
			},
		},
		{
			name:    "summer UTC offset is -4 after the DST transition",
			instant: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC),
			zone:    "America/New_York",
			expected: marketsession.WallClock{
				Year: 2024, Month: time.March, Day: 10,
				Hour: 11, Minute: 0, Second: 0, Weekday: time.Sunday,
			},
		},
		{
			name:    "date rolls backward across midnight",
			instant: time.Date(2024, 6, 1, 2, 30, 45, 0, time.UTC),
			zone:    "America/New_York",
			expected: marketsession.WallClock{
				Year: 2024, Month: time.May, Day: 31,
				Hour: 22, Minute: 30, Second: 45, Weekday: time.Friday,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wc, err := marketsession.DecomposeInZone(tc.instant, tc.zone)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, wc)
		})
	}
}

func TestDecomposeInZoneInvalidZone(t *testing.T) {
	_, err := marketsession.DecomposeInZone(time.Now(), "Not/AZone")
	assert.Error(t, err)
}

func TestSecondsUntil(t *testing.T) {
	wc := marketsession.WallClock{Hour: 10, Minute: 15, Second: 30}

	assert.Equal(t, 36930, wc.SecondsOfDay())
	// Target ahead of now.
	assert.Equal(t, 16*3600-36930, wc.SecondsUntil(16, 0))
	// Target already passed: negative.
	assert.Equal(t, 9*3600+30*60-36930, wc.SecondsUntil(9, 30))
}
