package services

import (
	"pintwatch/api/taplist"
	redisdao "pintwatch/dao/redis"
	"pintwatch/models/venue"
)

type VenueService struct {
	venueDao   *redisdao.RedisVenueDAO
	tapListAPI taplist.TapListAPI
}

// NewVenueService constructs a new VenueService with Redis dependency injection.
func NewVenueService(
	venueDao *redisdao.RedisVenueDAO,
	tapListAPI taplist.TapListAPI) *VenueService {

	return &VenueService{
		venueDao:   venueDao,
		tapListAPI: tapListAPI,
	}
}

func (vs *VenueService) GetVenuesNearby(lat, lon, radius float64) ([]venue.Venue, error) {
	return vs.venueDao.GetNearbyVenues(lat, lon, radius)
}

// GetAllVenues returns the stored snapshot used by the suburb ticker.
func (vs *VenueService) GetAllVenues() ([]venue.Venue, error) {
	return vs.venueDao.GetAllVenues()
}

func (vs *VenueService) GetVenue(slug string) (*venue.Venue, error) {
	return vs.tapListAPI.GetVenue(slug)
}
