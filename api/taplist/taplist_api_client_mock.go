package taplist

import (
	"log"

	"pintwatch/config"
	"pintwatch/models"
	"pintwatch/models/venue"
	"pintwatch/util"
)

// TapListApiClientMock serves fixture data from disk instead of calling the
// directory API.
type TapListApiClientMock struct {
}

// NewTapListApiClientMock creates a new instance of TapListApiClientMock
func NewTapListApiClientMock() *TapListApiClientMock {
	return &TapListApiClientMock{}
}

// SetAPIKey is a no-op on the mock.
func (c *TapListApiClientMock) SetAPIKey(apiKey string) {
}

// GetVenues reads the venue list fixture.
func (c *TapListApiClientMock) GetVenues() (*models.VenuesResponse, error) {
	response, err := util.ReadVenuesResponseFromJSON(config.GetResourcePath(config.VENUES_RESPONSE_RESOURCE))
	if err != nil {
		log.Println("Could not read venues response from json")
		return nil, err
	}
	return response, nil
}

// GetVenue reads the single-venue fixture regardless of slug.
func (c *TapListApiClientMock) GetVenue(slug string) (*venue.Venue, error) {
	response, err := util.ReadVenueFromJSON(config.GetResourcePath(config.VENUE_STATIC_RESOURCE))
	if err != nil {
		log.Println("Could not read venue from json")
		return nil, err
	}
	return response, nil
}

// GetDailyPick reads the daily pick fixture.
func (c *TapListApiClientMock) GetDailyPick() (*models.DailyPickResponse, error) {
	response, err := util.ReadDailyPickResponseFromJSON(config.GetResourcePath(config.DAILY_PICK_RESPONSE_RESOURCE))
	if err != nil {
		log.Println("Could not read daily pick response from json")
		return nil, err
	}
	return response, nil
}
