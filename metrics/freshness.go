package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pintwatch/config"
	"pintwatch/models/venue"
	"pintwatch/util"
)

// FreshnessTier classifies how recently a price was verified.
type FreshnessTier string

const (
	FreshnessFresh   FreshnessTier = "fresh"
	FreshnessAging   FreshnessTier = "aging"
	FreshnessStale   FreshnessTier = "stale"
	FreshnessUnknown FreshnessTier = "unknown"
)

// FreshnessInfo is the derived freshness signal. DaysAgo is nil when the
// venue has no verification timestamp. Label, Color and Icon are cosmetic
// and always re-derivable from the tier alone.
type FreshnessInfo struct {
	Tier    FreshnessTier `json:"tier"`
	DaysAgo *int          `json:"days_ago"`
	Label   string        `json:"label"`
	Color   string        `json:"color"`
	Icon    string        `json:"icon"`
}

// ClassifyFreshness buckets the time elapsed since lastVerified, relative to
// now. Partial days truncate toward zero, so 23h59m ago is 0 days. A
// future-dated timestamp yields a negative DaysAgo and lands in "fresh";
// clock skew is not specially guarded.
func ClassifyFreshness(lastVerified *time.Time, now time.Time) FreshnessInfo {
	if lastVerified == nil {
		return freshnessFor(FreshnessUnknown, nil)
	}

	daysAgo := int(now.Sub(*lastVerified).Hours() / 24)
	switch {
	case daysAgo <= config.FRESH_MAX_DAYS:
		return freshnessFor(FreshnessFresh, &daysAgo)
	case daysAgo <= config.AGING_MAX_DAYS:
		return freshnessFor(FreshnessAging, &daysAgo)
	default:
		return freshnessFor(FreshnessStale, &daysAgo)
	}
}

func freshnessFor(tier FreshnessTier, daysAgo *int) FreshnessInfo {
	info := FreshnessInfo{Tier: tier, DaysAgo: daysAgo}
	switch tier {
	case FreshnessFresh:
		info.Label = "Verified recently"
		info.Color = "green"
		info.Icon = "check"
	case FreshnessAging:
		info.Label = "Getting old"
		info.Color = "amber"
		info.Icon = "clock"
	case FreshnessStale:
		info.Label = "Needs re-check"
		info.Color = "red"
		info.Icon = "alert"
	default:
		info.Label = "Never verified"
		info.Color = "grey"
		info.Icon = "question"
	}
	return info
}

// IsDiscountActive reports whether the happy-hour window is on at the given
// instant, using the venue-local weekday and minute of day. The range is
// inclusive at both ends. Windows with End earlier than Start never match
// past midnight: the portion after 00:00 always evaluates false.
func IsDiscountActive(w *venue.DiscountWindow, now time.Time) bool {
	if w == nil {
		return false
	}

	today := util.WeekdayCode(now)
	active := false
	for _, d := range w.Days {
		if d == today {
			active = true
			break
		}
	}
	if !active {
		return false
	}

	cur := now.Hour()*60 + now.Minute()
	start := mustClockMinutes(w.Start)
	end := mustClockMinutes(w.End)
	return start <= cur && cur <= end
}

// mustClockMinutes parses an "hour:minute" string into minutes past midnight.
// Window times come from our own catalog; a string that does not parse is a
// programming error, so this panics rather than degrading.
func mustClockMinutes(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		panic(fmt.Sprintf("malformed clock string %q", clock))
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		panic(fmt.Sprintf("malformed hour in clock string %q", clock))
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		panic(fmt.Sprintf("malformed minute in clock string %q", clock))
	}
	return hour*60 + minute
}
