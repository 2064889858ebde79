package util

import (
	"encoding/json"
	"fmt"
	"os"

	"pintwatch/models"
	"pintwatch/models/venue"
)

// ReadVenuesResponseFromJSON loads a VenuesResponse from JSON on disk.
func ReadVenuesResponseFromJSON(filePath string) (*models.VenuesResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.VenuesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal VenuesResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenueFromJSON loads a single Venue from JSON on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var v venue.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Venue: %w", err)
	}
	return &v, nil
}

// ReadDailyPickResponseFromJSON loads a DailyPickResponse from JSON on disk.
func ReadDailyPickResponseFromJSON(filePath string) (*models.DailyPickResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.DailyPickResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DailyPickResponse: %w", err)
	}
	return &resp, nil
}
