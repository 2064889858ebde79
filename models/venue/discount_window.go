package venue

// DiscountWindow is a recurring weekly happy-hour range. Days holds 3-letter
// weekday codes ("Mon".."Sun"); Start and End are 24h "hour:minute" strings in
// venue-local wall-clock time. End is inclusive.
type DiscountWindow struct {
	Days  []string `json:"days"`
	Start string   `json:"start"`
	End   string   `json:"end"`
}
