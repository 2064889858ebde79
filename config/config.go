package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Venues Refresher config
const VENUES_REFRESHER_SCHEDULE_MINUTES = 60

// TapList API
const TAP_LIST_API_KEY = "tap_6c1f8a0d2b9e4f57a3c0d1e2f3a4b5c6"
const TAP_LIST_ENDPOINT_BASE_V1 = "https://api.taplist.dev/api/v1"

// Price labelling
// Fallback comparison average, used only when no live global mean is available.
const DEFAULT_BASELINE_AVG = 9.20
const BARGAIN_RATIO = 0.85
const PRICEY_RATIO = 1.15

// Freshness thresholds (days since last verification)
const FRESH_MAX_DAYS = 7
const AGING_MAX_DAYS = 21

// Watchlist
const WATCHLIST_CAPACITY = 5

// All venue-local times (happy hour windows, "today" for the daily pick)
// are interpreted in this zone regardless of where the caller runs.
const VENUE_TIMEZONE = "Australia/Sydney"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_RESPONSE_RESOURCE = "venues_response.json"
const VENUE_STATIC_RESOURCE = "venue_static.json"
const DAILY_PICK_RESPONSE_RESOURCE = "daily_pick_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
