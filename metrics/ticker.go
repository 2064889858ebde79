package metrics

import (
	"sort"
	"strings"

	"pintwatch/models"
	"pintwatch/models/venue"
)

// GlobalMeanPrice returns the mean over every priced venue in the snapshot
// and the number of priced venues. The mean is 0 when no venue has a price.
func GlobalMeanPrice(venues []venue.Venue) (float64, int) {
	var sum float64
	var n int
	for _, v := range venues {
		if v.Price == nil {
			continue
		}
		sum += *v.Price
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// BuildSuburbTickers groups priced venues by trimmed suburb name and emits
// one ticker per suburb with at least 2 priced venues, compared against the
// global mean over all priced venues. Suburbs with a single sample carry too
// little signal and are excluded. The result is sorted by suburb name
// ascending; the presentation layer loops it to build the repeating feed.
// No priced venues, or no eligible suburb, yields an empty list.
func BuildSuburbTickers(venues []venue.Venue) []models.SuburbTicker {
	prices := make(map[string][]float64)
	for _, v := range venues {
		suburb := strings.TrimSpace(v.Suburb)
		if suburb == "" || v.Price == nil {
			continue
		}
		prices[suburb] = append(prices[suburb], *v.Price)
	}

	globalMean, priced := GlobalMeanPrice(venues)
	if priced == 0 {
		return nil
	}

	var tickers []models.SuburbTicker
	for suburb, ps := range prices {
		if len(ps) < 2 {
			continue
		}
		var sum float64
		for _, p := range ps {
			sum += p
		}
		mean := sum / float64(len(ps))
		tickers = append(tickers, models.SuburbTicker{
			Suburb:     suburb,
			MeanPrice:  mean,
			VenueCount: len(ps),
			Delta:      mean - globalMean,
		})
	}

	sort.Slice(tickers, func(i, j int) bool {
		return tickers[i].Suburb < tickers[j].Suburb
	})
	return tickers
}
