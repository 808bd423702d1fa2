package marketsession

import (
	"sync"
	"time"
)

// Holiday is a market closure with its observed calendar date. Observed dates
// are stored at UTC midnight and compared by (year, month, day) only.
type Holiday struct {
	Name     string    `json:"name"`
	Observed time.Time `json:"observed"`
}

// HolidaysForYear computes the observed dates of the ten NYSE full-closure
// holidays for a calendar year, in calendar order.
func HolidaysForYear(year int) []Holiday {
	goodFriday := easterSunday(year).AddDate(0, 0, -2)

	return []Holiday{
		{Name: "New Year's Day", Observed: observedDate(date(year, time.January, 1))},
		{Name: "Martin Luther King Jr. Day", Observed: nthWeekday(year, time.January, time.Monday, 3)},
		{Name: "Presidents' Day", Observed: nthWeekday(year, time.February, time.Monday, 3)},
		{Name: "Good Friday", Observed: goodFriday},
		{Name: "Memorial Day", Observed: lastWeekday(year, time.May, time.Monday)},
		{Name: "Juneteenth", Observed: observedDate(date(year, time.June, 19))},
		{Name: "Independence Day", Observed: observedDate(date(year, time.July, 4))},
		{Name: "Labor Day", Observed: nthWeekday(year, time.September, time.Monday, 1)},
		{Name: "Thanksgiving Day", Observed: nthWeekday(year, time.November, time.Thursday, 4)},
		{Name: "Christmas Day", Observed: observedDate(date(year, time.December, 25))},
	}
}

// holidayCache memoizes per-year holiday lists. The rules are fixed, so a
// year's list never changes once computed.
var holidayCache = struct {
	sync.Mutex
	byYear map[int][]Holiday
}{byYear: make(map[int][]Holiday)}

func cachedHolidays(year int) []Holiday {
	holidayCache.Lock()
	defer holidayCache.Unlock()
	if hs, ok := holidayCache.byYear[year]; ok {
		return hs
	}
	hs := HolidaysForYear(year)
	holidayCache.byYear[year] = hs
	return hs
}

// HolidayName returns the holiday observed on the given exchange-local
// calendar date, if any. It checks the previous, current and next year so
// that lookups near a year boundary (an observed New Year's Day can land in
// December) never miss.
func HolidayName(year int, month time.Month, day int) (string, bool) {
	for _, y := range [3]int{year - 1, year, year + 1} {
		for _, h := range cachedHolidays(y) {
			hy, hm, hd := h.Observed.Date()
			if hy == year && hm == month && hd == day {
				return h.Name, true
			}
		}
	}
	return "", false
}

// IsHalfDay reports whether the exchange-local calendar date is an early-close
// (13:00) session: the day after Thanksgiving, or Christmas Eve.
func IsHalfDay(year int, month time.Month, day int) bool {
	if month == time.December && day == 24 {
		return true
	}
	dayAfter := nthWeekday(year, time.November, time.Thursday, 4).AddDate(0, 0, 1)
	return date(year, month, day).Equal(dayAfter)
}

// easterSunday computes Easter Sunday via the anonymous Gregorian computus.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(year, time.Month(month), day)
}

// observedDate applies the weekend-observance shift: Saturday holidays are
// observed the preceding Friday, Sunday holidays the following Monday.
func observedDate(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, -1)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// nthWeekday returns the date of the nth occurrence of a weekday in a month.
// Falls back to the 1st if fewer than n occur, which cannot happen for n <= 4.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	count := 0
	last := date(year, month+1, 1).AddDate(0, 0, -1).Day()
	for day := 1; day <= last; day++ {
		d := date(year, month, day)
		if d.Weekday() == weekday {
			count++
			if count == n {
				return d
			}
		}
	}
	return date(year, month, 1)
}

// lastWeekday returns the date of the last occurrence of a weekday in a month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	last := date(year, month+1, 1).AddDate(0, 0, -1)
	for d := last; ; d = d.AddDate(0, 0, -1) {
		if d.Weekday() == weekday {
			return d
		}
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
