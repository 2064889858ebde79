package util

import (
	"time"

	"pintwatch/config"
)

// DATE_KEY_FORMAT is a calendar date with no time component, so two reads in
// the same venue-local day produce the same key across any caller midnight.
const DATE_KEY_FORMAT = "2006-01-02"

// VenueLocation returns the fixed venue timezone. All "today" and weekday
// computation goes through this package so the fixed-zone rule holds in one
// place.
func VenueLocation() *time.Location {
	loc, err := time.LoadLocation(config.VENUE_TIMEZONE)
	if err != nil {
		panic("Unable to load venue timezone " + config.VENUE_TIMEZONE + ": " + err.Error())
	}
	return loc
}

// TodayKey returns the venue-local calendar date for the given instant.
func TodayKey(now time.Time) string {
	return now.In(VenueLocation()).Format(DATE_KEY_FORMAT)
}

// WeekdayCode returns the 3-letter weekday code ("Mon".."Sun") for the given
// instant, in the caller's wall-clock time. Happy-hour windows are stored in
// venue-local time assumed equal to the viewer's, so no zone shift here.
func WeekdayCode(now time.Time) string {
	return now.Weekday().String()[:3]
}
