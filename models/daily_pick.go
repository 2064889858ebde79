package models

import "pintwatch/models/venue"

// DailyPick is the once-per-day recommended venue. EffectivePrice is the
// post-discount price when the venue's happy hour is on at selection time.
type DailyPick struct {
	Venue          venue.Venue `json:"venue"`
	EffectivePrice float64     `json:"effective_price"`
	Reason         string      `json:"reason"`
}

// DailyPickResponse is the top-level JSON returned by GET /daily-pick.
// Pick is null when the upstream has no recommendation for the day.
type DailyPickResponse struct {
	Status string     `json:"status"`
	Pick   *DailyPick `json:"pick"`
}

// CachedDailyPick is the persisted cache entry: the pick plus the venue-local
// calendar date it was fetched on.
type CachedDailyPick struct {
	Date string    `json:"date"`
	Pick DailyPick `json:"pick"`
}
