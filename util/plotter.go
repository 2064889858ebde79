package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pintwatch/models"
)

// PlotSuburbTickers generates an HTML file rendering the suburb price feed
// as a bar chart against the global mean.
func PlotSuburbTickers(tickers []models.SuburbTicker, globalMean float64) {
	suburbs := make([]string, 0, len(tickers))
	bars := make([]opts.BarData, 0, len(tickers))
	for _, t := range tickers {
		suburbs = append(suburbs, t.Suburb)
		bars = append(bars, opts.BarData{
			Name:  t.Suburb,
			Value: t.MeanPrice,
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Suburb Pint Prices",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Mean pint price by suburb",
			Subtitle: fmt.Sprintf("Global mean: $%.2f", globalMean),
		}),
	)

	bar.SetXAxis(suburbs)
	bar.AddSeries("Mean price", bars,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{c}",
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create("suburb_ticker_chart.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}
	log.Println("Suburb ticker chart written to suburb_ticker_chart.html")
}
