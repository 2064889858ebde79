package metrics

import (
	"fmt"
	"math"

	"pintwatch/config"
)

// PriceTier classifies a price against a comparison average.
type PriceTier string

const (
	PriceBargain PriceTier = "bargain"
	PriceFair    PriceTier = "fair"
	PricePricey  PriceTier = "pricey"
	PriceNone    PriceTier = "none"
)

// ClassifyPrice labels a price relative to the baseline average. Bargain is
// strictly below 85% of baseline; fair runs up to and including 115%;
// anything above is pricey. A nil price is "none", never an error.
func ClassifyPrice(price *float64, baseline float64) PriceTier {
	if price == nil {
		return PriceNone
	}
	switch {
	case *price < config.BARGAIN_RATIO*baseline:
		return PriceBargain
	case *price <= config.PRICEY_RATIO*baseline:
		return PriceFair
	default:
		return PricePricey
	}
}

// FormatDelta renders the gap between a price and the baseline as display
// text. Differences under 5 cents collapse to "At avg"; otherwise the
// magnitude is shown to 2 decimal places with the direction spelled out.
func FormatDelta(price, baseline float64) string {
	diff := price - baseline
	if math.Abs(diff) < 0.05 {
		return "At avg"
	}
	if diff < 0 {
		return fmt.Sprintf("$%.2f below avg", -diff)
	}
	return fmt.Sprintf("$%.2f above avg", diff)
}
