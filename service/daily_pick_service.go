package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"pintwatch/api/taplist"
	"pintwatch/db"
	"pintwatch/models"
	"pintwatch/util"
)

const DAILY_PICK_KEY_V1 = "daily_pick_v1"

// DailyPickService caches the upstream pick of the day for one venue-local
// calendar day. The cache lives in the KV store, so it survives restarts.
// Concurrent first reads may each call the provider; last write wins.
type DailyPickService struct {
	client     db.RedisClient
	tapListAPI taplist.TapListAPI
}

// NewDailyPickService constructs the cache over the given provider.
func NewDailyPickService(client db.RedisClient, tapListAPI taplist.TapListAPI) *DailyPickService {
	return &DailyPickService{
		client:     client,
		tapListAPI: tapListAPI,
	}
}

// GetDailyPick returns the pick for the day containing now, in the fixed
// venue timezone. A cached pick from the same day is returned without a
// provider call; otherwise the provider is consulted and a non-null pick
// overwrites the cache. Provider failure or a null pick yields (nil, nil):
// "no pick available" is not an error and no retry is scheduled.
func (dp *DailyPickService) GetDailyPick(now time.Time) (*models.DailyPick, error) {
	today := util.TodayKey(now)

	if cached := dp.readCache(today); cached != nil {
		return cached, nil
	}

	resp, err := dp.tapListAPI.GetDailyPick()
	if err != nil {
		log.Printf("[DailyPickService] Provider call failed: %v", err)
		return nil, nil
	}
	if resp == nil || resp.Pick == nil {
		return nil, nil
	}

	if err := dp.writeCache(today, *resp.Pick); err != nil {
		log.Printf("[DailyPickService] Failed to cache daily pick: %v", err)
	}
	return resp.Pick, nil
}

// readCache returns the stored pick when its date matches today, nil on any
// miss. An unparseable stored entry is a miss, not an error.
func (dp *DailyPickService) readCache(today string) *models.DailyPick {
	raw, err := dp.client.Get(DAILY_PICK_KEY_V1)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			log.Printf("[DailyPickService] Failed to read cached daily pick: %v", err)
		}
		return nil
	}

	var entry models.CachedDailyPick
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		log.Printf("[DailyPickService] Discarding unparseable cached daily pick: %v", err)
		return nil
	}
	if entry.Date != today {
		return nil
	}
	return &entry.Pick
}

func (dp *DailyPickService) writeCache(today string, pick models.DailyPick) error {
	data, err := json.Marshal(models.CachedDailyPick{Date: today, Pick: pick})
	if err != nil {
		return fmt.Errorf("failed to marshal daily pick: %w", err)
	}
	if err := dp.client.Set(DAILY_PICK_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set daily pick in redis: %w", err)
	}
	return nil
}
