package marketsession

import (
	"fmt"
	"time"
)

// State classifies the exchange session.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// Regular NYSE session boundaries, exchange-local.
const (
	openHour    = 9
	openMinute  = 30
	closeHour   = 16
	earlyClose  = 13
	secondsADay = 24 * 3600
)

// Status is the session classification for a single instant. It has no
// identity beyond "current value" and is recomputed wholesale on every call.
type Status struct {
	State            State  `json:"state"`
	Label            string `json:"label"`
	CountdownSeconds int    `json:"countdown_seconds"`
	Countdown        string `json:"countdown"`
	HolidayName      string `json:"holiday_name,omitempty"`
	NextOpen         string `json:"next_open,omitempty"`
	HalfDay          bool   `json:"half_day"`
}

// Resolve classifies an instant as an open or closed exchange session and
// computes the countdown to the relevant boundary. Pure function of now; call
// sites own any polling timer.
//
// The holiday check always outranks the weekday check when deciding whether
// today is a trading day. A half-day only moves the close, never the
// open/closed decision itself.
func Resolve(now time.Time) Status {
	et := now.In(exchangeLocation())
	wc := WallClock{
		Year: et.Year(), Month: et.Month(), Day: et.Day(),
		Hour: et.Hour(), Minute: et.Minute(), Second: et.Second(),
		Weekday: et.Weekday(),
	}

	weekend := wc.Weekday == time.Saturday || wc.Weekday == time.Sunday
	holiday, isHoliday := HolidayName(wc.Year, wc.Month, wc.Day)
	halfDay := IsHalfDay(wc.Year, wc.Month, wc.Day)

	todayClose := closeHour
	if halfDay {
		todayClose = earlyClose
	}
	toOpen := wc.SecondsUntil(openHour, openMinute)
	toClose := wc.SecondsUntil(todayClose, 0)

	display := holiday
	if !isHoliday && halfDay {
		display = "Early Close"
	}

	// Open session.
	if !weekend && !isHoliday && toOpen <= 0 && toClose > 0 {
		label := "Closes in"
		if halfDay {
			label = "Closes early in"
		}
		return Status{
			State:            StateOpen,
			Label:            label,
			CountdownSeconds: toClose,
			Countdown:        FormatCountdown(toClose),
			HolidayName:      display,
			HalfDay:          halfDay,
		}
	}

	// Closed, but today's open is still ahead.
	if !weekend && !isHoliday && toOpen > 0 {
		return Status{
			State:            StateClosed,
			Label:            "Opens in",
			CountdownSeconds: toOpen,
			Countdown:        FormatCountdown(toOpen),
			HolidayName:      display,
			NextOpen:         "Today 9:30 AM ET",
			HalfDay:          halfDay,
		}
	}

	// Weekend, holiday, or past today's close: scan forward to the next
	// trading day. The scan must skip holidays too, so a Friday evening
	// before a Monday holiday lands on Tuesday.
	days := 1
	for {
		next := et.AddDate(0, 0, days)
		if isTradingDate(next.Year(), next.Month(), next.Day(), next.Weekday()) {
			break
		}
		days++
	}

	toMidnight := secondsADay - wc.SecondsOfDay()
	countdown := toMidnight + (days-1)*secondsADay + openHour*3600 + openMinute*60
	if countdown < 0 {
		countdown = 0
	}

	nextOpen := et.AddDate(0, 0, days)
	return Status{
		State:            StateClosed,
		Label:            "Opens in",
		CountdownSeconds: countdown,
		Countdown:        FormatCountdown(countdown),
		HolidayName:      display,
		NextOpen:         nextOpen.Format("Monday, Jan 2") + " 9:30 AM ET",
		HalfDay:          halfDay,
	}
}

// IsTradingDay reports whether the instant falls on an exchange trading day
// (a non-holiday weekday), ignoring the time of day.
func IsTradingDay(t time.Time) bool {
	et := t.In(exchangeLocation())
	return isTradingDate(et.Year(), et.Month(), et.Day(), et.Weekday())
}

// IsTradingDate is the calendar-date form of IsTradingDay, for callers that
// already hold an exchange-local date and must not re-interpret it in another
// zone.
func IsTradingDate(year int, month time.Month, day int) bool {
	return isTradingDate(year, month, day, date(year, month, day).Weekday())
}

func isTradingDate(year int, month time.Month, day int, weekday time.Weekday) bool {
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	_, isHoliday := HolidayName(year, month, day)
	return !isHoliday
}

// FormatCountdown renders seconds as zero-padded HH:MM:SS, clamped at zero.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
