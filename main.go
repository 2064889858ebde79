package main

import (
	"log"
	"time"

	"pintwatch/config"
	"pintwatch/di"
	"pintwatch/metrics"
	"pintwatch/util"
)

func plotTickerSnapshot(container *di.Container) {
	venues, err := container.RedisVenueDao.GetAllVenues()
	if err != nil {
		log.Printf("Skipping ticker chart, could not load snapshot: %v", err)
		return
	}
	globalMean, _ := metrics.GlobalMeanPrice(venues)
	util.PlotSuburbTickers(metrics.BuildSuburbTickers(venues), globalMean)
}

func main() {
	container := di.NewContainer("prod")

	log.Println("Refreshing venue snapshot!")
	if err := container.VenuesRefresherService.RefreshVenuesData(); err != nil {
		log.Printf("Initial refresh failed: %v", err)
	}

	plotTickerSnapshot(container)

	log.Println("Starting periodic refresher job!")
	container.VenuesRefresherService.StartPeriodicJob(config.VENUES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	log.Println("Starting server!")
	container.PintWatchHttpServer.Start()
}
