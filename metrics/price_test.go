package metrics

import (
	"testing"

	"pintwatch/config"
)

func price(p float64) *float64 {
	return &p
}

func TestClassifyPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    *float64
		baseline float64
		want     PriceTier
	}{
		{"clear bargain", price(7.00), 9.20, PriceBargain},
		{"fair below avg", price(9.00), 9.20, PriceFair},
		{"fair above avg", price(10.50), 9.20, PriceFair},
		{"clear pricey", price(11.00), 9.20, PricePricey},
		{"missing price", nil, 9.20, PriceNone},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ClassifyPrice(test.price, test.baseline); got != test.want {
				t.Errorf("ClassifyPrice(%v, %v) = %s; want %s", test.price, test.baseline, got, test.want)
			}
		})
	}
}

func TestClassifyPrice_FairBoundsInclusive(t *testing.T) {
	// Bargain is strictly below 85% of baseline; exactly 85% is fair, and
	// exactly 115% is still fair. Baseline 10 keeps the bounds exact.
	if got := ClassifyPrice(price(8.50), 10.0); got != PriceFair {
		t.Errorf("Expected fair at the bargain bound, got %s", got)
	}
	if got := ClassifyPrice(price(8.49), 10.0); got != PriceBargain {
		t.Errorf("Expected bargain just under the bound, got %s", got)
	}
	if got := ClassifyPrice(price(11.50), 10.0); got != PriceFair {
		t.Errorf("Expected fair at the pricey bound, got %s", got)
	}
	if got := ClassifyPrice(price(11.51), 10.0); got != PricePricey {
		t.Errorf("Expected pricey just over the bound, got %s", got)
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		baseline float64
		want     string
	}{
		{"below average", 7.00, 9.20, "$2.20 below avg"},
		{"above average", 11.00, 9.20, "$1.80 above avg"},
		{"at average", 9.20, 9.20, "At avg"},
		{"within tolerance", 9.18, 9.20, "At avg"},
		{"just outside tolerance", 9.26, 9.20, "$0.06 above avg"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := FormatDelta(test.price, test.baseline); got != test.want {
				t.Errorf("FormatDelta(%v, %v) = %q; want %q", test.price, test.baseline, got, test.want)
			}
		})
	}
}

func TestDefaultBaseline(t *testing.T) {
	// The fallback average classifies the documented examples as expected.
	if got := ClassifyPrice(price(7.00), config.DEFAULT_BASELINE_AVG); got != PriceBargain {
		t.Errorf("Expected bargain against default baseline, got %s", got)
	}
}
