package marketsession_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wrdo/hunt/internal/marketsession"
)

func TestHolidaysForYearInvariants(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		holidays := marketsession.HolidaysForYear(year)
		assert.Len(t, holidays, 10, "year %d should have exactly 10 holidays", year)

		for _, h := range holidays {
			wd := h.Observed.Weekday()
			assert.NotEqual(t, time.Saturday, wd, "%s %d observed on a Saturday", h.Name, year)
			assert.NotEqual(t, time.Sunday, wd, "%s %d observed on a Sunday", h.Name, year)
		}
	}
}

func TestObservedDates(t *testing.T) {
	testCases := []struct {
		name     string
		year     int
		holiday  string
		expected time.Time
	}{
		{
			name:     "New Year's Day 2022 falls on Saturday, observed Friday Dec 31 2021",
			year:     2022,
			holiday:  "New Year's Day",
			expected: time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "New Year's Day 2023 falls on Sunday, observed Monday Jan 2 2023",
			year:     2023,
			holiday:  "New Year's Day",
			expected: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Good Friday 2024 is two days before Easter (Mar 31)",
			year:     2024,
			holiday:  "Good Friday",
			expected: time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Thanksgiving 2023 is the 4th Thursday of November",
			year:     2023,
			holiday:  "Thanksgiving Day",
			expected: time.Date(2023, 11, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Memorial Day 2024 is the last Monday of May",
			year:     2024,
			holiday:  "Memorial Day",
			expected: time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "MLK Day 2025 is the 3rd Monday of January",
			year:     2025,
			holiday:  "Martin Luther King Jr. Day",
			expected: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Juneteenth 2022 falls on Sunday, observed Monday Jun 20",
			year:     2022,
			holiday:  "Juneteenth",
			expected: time.Date(2022, 6, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found := false
			for _, h := range marketsession.HolidaysForYear(tc.year) {
				if h.Name == tc.holiday {
					found = true
					assert.Equal(t, tc.expected, h.Observed)
				}
			}
			assert.True(t, found, "holiday %q missing for year %d", tc.holiday, tc.year)
		})
	}
}

func TestHolidayNameCrossYearBoundary(t *testing.T) {
	// New Year's Day 2022 is observed on Dec 31 2021. A lookup for that
	// December date must find it via the following year's list.
	name, ok := marketsession.HolidayName(2021, time.December, 31)
	assert.True(t, ok)
	assert.Equal(t, "New Year's Day", name)

	// And a regular non-holiday date matches nothing.
	_, ok = marketsession.HolidayName(2024, time.June, 28)
	assert.False(t, ok)
}

func TestIsHalfDay(t *testing.T) {
	// Thanksgiving 2023 is Nov 23, so Nov 24 is a half day.
	assert.True(t, marketsession.IsHalfDay(2023, time.November, 24))
	assert.False(t, marketsession.IsHalfDay(2023, time.November, 23))

	// Christmas Eve is always a half day.
	assert.True(t, marketsession.IsHalfDay(2024, time.December, 24))
	assert.False(t, marketsession.IsHalfDay(2024, time.December, 26))
}
