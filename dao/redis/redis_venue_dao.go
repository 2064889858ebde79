package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"pintwatch/db"
	"pintwatch/models/venue"
)

const VENUES_GEO_KEY_V1 = "venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venues_geo_place_v1:%s"

// RedisVenueDAO handles venue operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, v.Slug)
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey, v.VenueLat, v.VenueLon, v)
}

// GetNearbyVenues retrieves nearby venues within a given radius (in km).
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon float64, radius float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %v", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %v", err)
		}
	}
	return venues, nil
}

// GetAllVenues loads the full stored snapshot, skipping entries that no
// longer parse. The suburb ticker recomputes over this list on every read.
func (dao *RedisVenueDAO) GetAllVenues() ([]venue.Venue, error) {
	pattern := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}

	venues := make([]venue.Venue, 0, len(keys))
	for _, k := range keys {
		raw, err := dao.client.Get(k)
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get venue %s: %w", k, err)
		}
		var v venue.Venue
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			log.Printf("[RedisVenueDAO] Skipping unparseable venue at %s: %v", k, err)
			continue
		}
		venues = append(venues, v)
	}
	return venues, nil
}

// ListAllVenueSlugs returns all venue slugs present in the geo index.
func (dao *RedisVenueDAO) ListAllVenueSlugs() ([]string, error) {
	pattern := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue geo keys: %w", err)
	}
	slugs := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		slugs = append(slugs, strings.TrimPrefix(k, prefix))
	}
	return slugs, nil
}

// DeleteVenue removes a venue's JSON blob by slug.
func (dao *RedisVenueDAO) DeleteVenue(slug string) error {
	key := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, slug)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue key %s: %w", key, err)
	}
	log.Printf("[RedisVenueDAO] Deleted venue %s", slug)
	return nil
}
