package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	services "pintwatch/service"
)

// ToggleWatchRequest is the body of POST /v1/watchlist/toggle.
type ToggleWatchRequest struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Suburb string `json:"suburb"`
}

// WatchlistResponse is the full store state returned after reads and writes.
type WatchlistResponse struct {
	Items  interface{} `json:"items"`
	Count  int         `json:"count"`
	IsFull bool        `json:"is_full"`
}

type WatchlistHandler struct {
	watchlistSvc *services.WatchlistService
}

func NewWatchlistHandler(watchlistSvc *services.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistSvc: watchlistSvc}
}

// GetWatchlist handles GET /v1/watchlist.
func (h *WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	h.writeState(w)
}

// ToggleWatch handles POST /v1/watchlist/toggle.
func (h *WatchlistHandler) ToggleWatch(w http.ResponseWriter, r *http.Request) {
	var req ToggleWatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Slug == "" {
		http.Error(w, "Invalid toggle request body", http.StatusBadRequest)
		return
	}

	h.watchlistSvc.ToggleWatch(req.Slug, req.Name, req.Suburb, time.Now())
	h.writeState(w)
}

// RemoveFromWatchlist handles DELETE /v1/watchlist/{slug}.
func (h *WatchlistHandler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	h.watchlistSvc.RemoveFromWatchlist(slug)
	h.writeState(w)
}

// ClearWatchlist handles DELETE /v1/watchlist.
func (h *WatchlistHandler) ClearWatchlist(w http.ResponseWriter, r *http.Request) {
	h.watchlistSvc.ClearWatchlist()
	h.writeState(w)
}

func (h *WatchlistHandler) writeState(w http.ResponseWriter) {
	writeJSON(w, WatchlistResponse{
		Items:  h.watchlistSvc.Items(),
		Count:  h.watchlistSvc.Count(),
		IsFull: h.watchlistSvc.IsFull(),
	})
}
