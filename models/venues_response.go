package models

import "pintwatch/models/venue"

// VenuesResponse is the top-level JSON returned by GET /venues.
type VenuesResponse struct {
	Status  string        `json:"status"`
	VenuesN int           `json:"venues_n"`
	Venues  []venue.Venue `json:"venues"`
}
