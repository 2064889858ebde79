package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"pintwatch/config"
	redisdao "pintwatch/dao/redis"
	"pintwatch/metrics"
	"pintwatch/models"
	"pintwatch/models/venue"
	services "pintwatch/service"
)

const (
	LAT_QUERY_ARG     = "lat"
	LON_QUERY_ARG     = "lon"
	RADIUS_QUERY_ARG  = "radius"
	VERBOSE_QUERY_ARG = "verbose"
)

// VenueWithSignals pairs a Venue with its derived display signals.
type VenueWithSignals struct {
	Venue           venue.Venue           `json:"venue"`
	Freshness       metrics.FreshnessInfo `json:"freshness"`
	PriceTier       metrics.PriceTier     `json:"price_tier"`
	PriceDelta      string                `json:"price_delta,omitempty"`
	HappyHourActive bool                  `json:"happy_hour_active"`
}

// MinifiedVenue is the small form returned when verbose=false.
type MinifiedVenue struct {
	Slug            string            `json:"slug"`
	Name            string            `json:"name"`
	Suburb          string            `json:"suburb"`
	Price           *float64          `json:"price"`
	PriceTier       metrics.PriceTier `json:"price_tier"`
	FreshnessLabel  string            `json:"freshness_label"`
	HappyHourActive bool              `json:"happy_hour_active"`
}

type VenueHandler struct {
	redisVenueDao *redisdao.RedisVenueDAO
	dailyPickSvc  *services.DailyPickService
}

func NewVenueHandler(redisVenueDao *redisdao.RedisVenueDAO, dailyPickSvc *services.DailyPickService) *VenueHandler {
	return &VenueHandler{
		redisVenueDao: redisVenueDao,
		dailyPickSvc:  dailyPickSvc,
	}
}

// GetVenuesNearby handles GET /v1/venues/nearby.
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	lat, lon, radius, verbose, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Load geo-indexed venues
	venues, err := h.redisVenueDao.GetNearbyVenues(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Derive per-venue signals against the live global mean
	signals := h.deriveSignals(venues, time.Now())

	// 4) Transform according to verbose flag
	result := h.transform(signals, verbose)

	// 5) Write JSON
	writeJSON(w, result)
}

// GetSuburbTicker handles GET /v1/ticker.
func (h *VenueHandler) GetSuburbTicker(w http.ResponseWriter, r *http.Request) {
	venues, err := h.redisVenueDao.GetAllVenues()
	if err != nil {
		log.Println("Error loading venue snapshot:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	tickers := metrics.BuildSuburbTickers(venues)
	if tickers == nil {
		tickers = []models.SuburbTicker{}
	}
	writeJSON(w, tickers)
}

// GetDailyPick handles GET /v1/daily-pick. 204 when no pick is available.
func (h *VenueHandler) GetDailyPick(w http.ResponseWriter, r *http.Request) {
	pick, err := h.dailyPickSvc.GetDailyPick(time.Now())
	if err != nil {
		log.Println("Error loading daily pick:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if pick == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, pick)
}

func (h *VenueHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, verbose bool, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	verbose = false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

// deriveSignals attaches freshness, price tier, delta text and happy-hour
// state to each venue. The baseline is the live global mean when at least
// one venue is priced, the fixed default otherwise.
func (h *VenueHandler) deriveSignals(venues []venue.Venue, now time.Time) []VenueWithSignals {
	baseline, priced := metrics.GlobalMeanPrice(venues)
	if priced == 0 {
		baseline = config.DEFAULT_BASELINE_AVG
	}

	out := make([]VenueWithSignals, 0, len(venues))
	for _, v := range venues {
		s := VenueWithSignals{
			Venue:           v,
			Freshness:       metrics.ClassifyFreshness(v.LastVerified, now),
			PriceTier:       metrics.ClassifyPrice(v.Price, baseline),
			HappyHourActive: metrics.IsDiscountActive(v.HappyHour, now),
		}
		if v.Price != nil {
			s.PriceDelta = metrics.FormatDelta(*v.Price, baseline)
		}
		out = append(out, s)
	}
	// cheapest first; unpriced venues sink to the end
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Venue.Price, out[j].Venue.Price
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return *pi < *pj
	})
	return out
}

func (h *VenueHandler) transform(signals []VenueWithSignals, verbose bool) interface{} {
	if verbose {
		return signals
	}
	// minify
	min := make([]MinifiedVenue, 0, len(signals))
	for _, s := range signals {
		min = append(min, MinifiedVenue{
			Slug:            s.Venue.Slug,
			Name:            s.Venue.Name,
			Suburb:          s.Venue.Suburb,
			Price:           s.Venue.Price,
			PriceTier:       s.PriceTier,
			FreshnessLabel:  s.Freshness.Label,
			HappyHourActive: s.HappyHourActive,
		})
	}
	return min
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}
