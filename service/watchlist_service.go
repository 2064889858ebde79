package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"pintwatch/config"
	"pintwatch/db"
	"pintwatch/models"
)

const WATCHLIST_KEY_V1 = "watchlist_v1"

// WatchlistService is the bounded favourites store: an insertion-ordered set
// of at most config.WATCHLIST_CAPACITY venues, keyed by slug, persisted as a
// JSON array. When the list is full the oldest-inserted item is evicted; a
// venue toggled off and back on counts as new again. Nothing is persisted
// until Load has run, so a fresh process never overwrites stored favourites
// with an empty list.
type WatchlistService struct {
	client db.RedisClient
	mu     sync.Mutex
	items  []models.WatchlistItem
	loaded bool
}

// NewWatchlistService constructs the store. Call Load before mutating.
func NewWatchlistService(client db.RedisClient) *WatchlistService {
	return &WatchlistService{client: client}
}

// Load populates the in-memory list from storage and enables persistence.
// A missing or unparseable stored entry starts the list empty; neither is an
// error. Load is idempotent: repeat calls after the first are no-ops.
func (ws *WatchlistService) Load() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.loaded {
		return nil
	}

	raw, err := ws.client.Get(WATCHLIST_KEY_V1)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			return fmt.Errorf("failed to load watchlist: %w", err)
		}
		ws.loaded = true
		return nil
	}

	var items []models.WatchlistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[WatchlistService] Discarding unparseable stored watchlist: %v", err)
		items = nil
	}
	if len(items) > config.WATCHLIST_CAPACITY {
		items = items[len(items)-config.WATCHLIST_CAPACITY:]
	}
	ws.items = items
	ws.loaded = true
	return nil
}

// IsWatched reports whether the slug is in the list.
func (ws *WatchlistService) IsWatched(slug string) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.indexOf(slug) >= 0
}

// ToggleWatch is the only mutation entry point. A present slug is removed;
// a new slug is appended, evicting the oldest item first when the list is at
// capacity. AddedAt is stamped from the injected now.
func (ws *WatchlistService) ToggleWatch(slug, name, suburb string, now time.Time) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if i := ws.indexOf(slug); i >= 0 {
		ws.items = append(ws.items[:i], ws.items[i+1:]...)
		ws.persist()
		return
	}

	if len(ws.items) >= config.WATCHLIST_CAPACITY {
		// FIFO: position 0 is the oldest-inserted item.
		ws.items = ws.items[1:]
	}
	ws.items = append(ws.items, models.WatchlistItem{
		Slug:    slug,
		Name:    name,
		Suburb:  suburb,
		AddedAt: now,
	})
	ws.persist()
}

// RemoveFromWatchlist removes the slug if present, no-op otherwise.
func (ws *WatchlistService) RemoveFromWatchlist(slug string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	i := ws.indexOf(slug)
	if i < 0 {
		return
	}
	ws.items = append(ws.items[:i], ws.items[i+1:]...)
	ws.persist()
}

// ClearWatchlist empties the list.
func (ws *WatchlistService) ClearWatchlist() {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.items = nil
	ws.persist()
}

// Items returns a copy of the list in insertion order.
func (ws *WatchlistService) Items() []models.WatchlistItem {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	out := make([]models.WatchlistItem, len(ws.items))
	copy(out, ws.items)
	return out
}

// Count returns the number of watched venues.
func (ws *WatchlistService) Count() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.items)
}

// IsFull reports whether the list is at capacity.
func (ws *WatchlistService) IsFull() bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.items) >= config.WATCHLIST_CAPACITY
}

// indexOf and persist are called with ws.mu held.
func (ws *WatchlistService) indexOf(slug string) int {
	for i, item := range ws.items {
		if item.Slug == slug {
			return i
		}
	}
	return -1
}

func (ws *WatchlistService) persist() {
	if !ws.loaded {
		log.Println("[WatchlistService] Skipping persist: initial load has not completed")
		return
	}
	items := ws.items
	if items == nil {
		items = []models.WatchlistItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("[WatchlistService] Failed to marshal watchlist: %v", err)
		return
	}
	if err := ws.client.Set(WATCHLIST_KEY_V1, string(data)); err != nil {
		log.Printf("[WatchlistService] Failed to persist watchlist: %v", err)
	}
}
