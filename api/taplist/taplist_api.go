package taplist

import (
	"pintwatch/models"
	"pintwatch/models/venue"
)

// TapListAPI defines the interface for interacting with the TapList directory API
type TapListAPI interface {
	GetVenues() (*models.VenuesResponse, error)
	GetVenue(slug string) (*venue.Venue, error)
	GetDailyPick() (*models.DailyPickResponse, error)
	SetAPIKey(apiKey string)
}
