package services

import (
	"log"
	"time"

	"pintwatch/api/taplist"
	redisdao "pintwatch/dao/redis"
)

// VenuesRefresherService periodically refreshes the stored venue snapshot
// from the TapList directory API.
type VenuesRefresherService struct {
	venueDao   *redisdao.RedisVenueDAO
	tapListAPI taplist.TapListAPI
}

// NewVenuesRefresherService constructs a new Refresher with dependencies.
func NewVenuesRefresherService(
	venueDao *redisdao.RedisVenueDAO,
	tapListAPI taplist.TapListAPI,
) *VenuesRefresherService {
	return &VenuesRefresherService{
		venueDao:   venueDao,
		tapListAPI: tapListAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (vr *VenuesRefresherService) StartPeriodicJob(interval time.Duration) {
	go vr.startPeriodicJob(interval)
}

func (vr *VenuesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[VenuesRefresherService] Running periodic venues refresher job.")
		if err := vr.RefreshVenuesData(); err != nil {
			log.Printf("[VenuesRefresherService] RefreshVenuesData returned error: %v", err)
		} else {
			log.Println("[VenuesRefresherService] RefreshVenuesData completed successfully.")
		}
	}
}

// RefreshVenuesData pulls the full venue list, dedupes it, and upserts each
// venue into the geo-indexed store.
func (vr *VenuesRefresherService) RefreshVenuesData() error {
	resp, err := vr.tapListAPI.GetVenues()
	if err != nil {
		log.Printf("[VenuesRefresherService] Failed to fetch venue list: %v", err)
		return err
	}

	log.Printf("[VenuesRefresherService] Fetched %d venues (status=%s)", len(resp.Venues), resp.Status)

	seenSlugs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	upserted := 0

	for _, v := range resp.Venues {
		if _, dup := seenSlugs[v.Slug]; dup {
			log.Printf("[VenuesRefresherService] Skipping duplicate venue slug=%s", v.Slug)
			continue
		}
		if _, dup := seenNames[v.Name]; dup {
			log.Printf("[VenuesRefresherService] Skipping duplicate venue name=%q", v.Name)
			continue
		}

		seenSlugs[v.Slug] = struct{}{}
		seenNames[v.Name] = struct{}{}

		if err := vr.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[VenuesRefresherService] Upsert failed for %s: %v", v.Slug, err)
			continue
		}
		upserted++
	}

	log.Printf("[VenuesRefresherService] Upserted %d venues", upserted)
	return nil
}
