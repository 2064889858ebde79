package venue

import (
	"fmt"
	"time"
)

// Venue represents a pub in the price directory. Price and LastVerified are
// nullable: an unpriced or never-verified venue is still listed.
type Venue struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Suburb string `json:"suburb"`

	VenueLat float64 `json:"venue_lat"`
	VenueLon float64 `json:"venue_lng"`

	Price        *float64   `json:"price"`
	LastVerified *time.Time `json:"last_verified"`

	HappyHour *DiscountWindow `json:"happy_hour,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(slug=%s, name=%s, suburb=%s, lat=%f, lon=%f)",
		v.Slug, v.Name, v.Suburb, v.VenueLat, v.VenueLon)
}
