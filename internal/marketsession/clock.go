package marketsession

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// ExchangeZone is the IANA timezone all session-state computations use,
// regardless of the viewer's local timezone.
const ExchangeZone = "America/New_York"

// WallClock is an instant decomposed into calendar fields as observed in a
// named timezone. Gregorian calendar, 24-hour time.
type WallClock struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
}

// DecomposeInZone interprets an instant in the given IANA timezone and returns
// its wall-clock calendar fields. The only error path is an invalid timezone
// identifier.
func DecomposeInZone(t time.Time, zone string) (WallClock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return WallClock{}, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	local := t.In(loc)
	return WallClock{
		Year:    local.Year(),
		Month:   local.Month(),
		Day:     local.Day(),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
		Second:  local.Second(),
		Weekday: local.Weekday(),
	}, nil
}

// SecondsOfDay returns the number of seconds elapsed since local midnight.
func (w WallClock) SecondsOfDay() int {
	return w.Hour*3600 + w.Minute*60 + w.Second
}

// SecondsUntil returns target seconds-of-day minus current seconds-of-day.
// Negative means the target already passed today.
func (w WallClock) SecondsUntil(targetHour, targetMinute int) int {
	return targetHour*3600 + targetMinute*60 - w.SecondsOfDay()
}

var (
	exchangeLocOnce sync.Once
	exchangeLoc     *time.Location
)

// exchangeLocation loads the exchange timezone once. Missing tzdata on the
// host is the only failure mode; degrade to UTC rather than panic.
func exchangeLocation() *time.Location {
	exchangeLocOnce.Do(func() {
		loc, err := time.LoadLocation(ExchangeZone)
		if err != nil {
			log.Errorf("Failed to load location %q: %v. Falling back to UTC.", ExchangeZone, err)
			loc = time.UTC
		}
		exchangeLoc = loc
	})
	return exchangeLoc
}
