package taplist

import (
	"pintwatch/api"
	"pintwatch/models"
	"pintwatch/models/venue"
)

// TapListApiClient embeds the common HTTPClient
type TapListApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewTapListApiClient creates a new instance of TapListApiClient
func NewTapListApiClient(httpClient *api.HTTPClient) *TapListApiClient {
	return &TapListApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the key sent on every request.
func (c *TapListApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

func (c *TapListApiClient) authHeaders() map[string]string {
	return map[string]string{"X-Api-Key": c.apiKey}
}

// GetVenues retrieves the full venue list from the directory.
func (c *TapListApiClient) GetVenues() (*models.VenuesResponse, error) {
	var response models.VenuesResponse
	err := c.Request("GET", "/venues", c.authHeaders(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenue retrieves a venue given a venue slug
func (c *TapListApiClient) GetVenue(slug string) (*venue.Venue, error) {
	var response venue.Venue
	err := c.Request("GET", "/venues/"+slug, c.authHeaders(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetDailyPick retrieves today's recommended venue. A response with a null
// pick means the upstream has no recommendation; that is not an error.
func (c *TapListApiClient) GetDailyPick() (*models.DailyPickResponse, error) {
	var response models.DailyPickResponse
	err := c.Request("GET", "/daily-pick", c.authHeaders(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
