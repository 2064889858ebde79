package models

// SuburbTicker is one entry of the suburb price feed: the suburb's mean pint
// price over its priced venues and the signed gap to the global mean.
type SuburbTicker struct {
	Suburb     string  `json:"suburb"`
	MeanPrice  float64 `json:"mean_price"`
	VenueCount int     `json:"venue_count"`
	Delta      float64 `json:"delta"`
}
