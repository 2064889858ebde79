package models

import "time"

// WatchlistItem is one persisted favourite. Name and Suburb are denormalized
// so the watchlist renders without a venue lookup. AddedAt orders eviction
// only; list position is the source of truth for insertion order.
type WatchlistItem struct {
	Slug    string    `json:"slug"`
	Name    string    `json:"name"`
	Suburb  string    `json:"suburb"`
	AddedAt time.Time `json:"added_at"`
}
