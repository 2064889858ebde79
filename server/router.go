package server

import (
	"github.com/gorilla/mux"

	"pintwatch/server/handlers"
)

type Router struct {
	venueHandler     *handlers.VenueHandler
	watchlistHandler *handlers.WatchlistHandler
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler *handlers.VenueHandler,
	watchlistHandler *handlers.WatchlistHandler,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:     venueHandler,
		watchlistHandler: watchlistHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")

	r.router.HandleFunc("/v1/ticker", r.venueHandler.GetSuburbTicker).Methods("GET")
	r.router.HandleFunc("/v1/daily-pick", r.venueHandler.GetDailyPick).Methods("GET")

	r.router.HandleFunc("/v1/watchlist", r.watchlistHandler.GetWatchlist).Methods("GET")
	r.router.HandleFunc("/v1/watchlist/toggle", r.watchlistHandler.ToggleWatch).Methods("POST")
	r.router.HandleFunc("/v1/watchlist/{slug}", r.watchlistHandler.RemoveFromWatchlist).Methods("DELETE")
	r.router.HandleFunc("/v1/watchlist", r.watchlistHandler.ClearWatchlist).Methods("DELETE")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
