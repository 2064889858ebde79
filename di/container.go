package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"pintwatch/api"
	"pintwatch/api/taplist"
	"pintwatch/config"
	redisdao "pintwatch/dao/redis"
	"pintwatch/db"
	"pintwatch/server"
	"pintwatch/server/handlers"
	services "pintwatch/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisVenueDao          *redisdao.RedisVenueDAO
	TapListAPI             taplist.TapListAPI
	VenueService           *services.VenueService
	WatchlistService       *services.WatchlistService
	DailyPickService       *services.DailyPickService
	VenuesRefresherService *services.VenuesRefresherService
	VenueHandler           *handlers.VenueHandler
	WatchlistHandler       *handlers.WatchlistHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	PintWatchHttpServer    *server.PintWatchHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Venue DAO
	redisVenueDao := redisdao.NewRedisVenueDAO(redisClient)

	// Initialize TapList API - mock outside prod
	var tapListAPI taplist.TapListAPI
	if env != "prod" {
		tapListAPI = taplist.NewTapListApiClientMock()
		log.Printf("Using mock tap list api")
	} else {
		log.Printf("Using prod tap list api")
		httpClient := api.NewHTTPClient(config.TAP_LIST_ENDPOINT_BASE_V1)

		tapListAPI = taplist.NewTapListApiClient(httpClient)
		tapListAPI.SetAPIKey(config.TAP_LIST_API_KEY)
	}

	// Initialize service layer
	venueService := services.NewVenueService(redisVenueDao, tapListAPI)

	watchlistService := services.NewWatchlistService(redisClient)
	if err := watchlistService.Load(); err != nil {
		log.Printf("Failed to load watchlist, starting empty: %v", err)
	}

	dailyPickService := services.NewDailyPickService(redisClient, tapListAPI)

	venuesRefresherService := services.NewVenuesRefresherService(redisVenueDao, tapListAPI)

	// Initialize handlers
	venueHandler := handlers.NewVenueHandler(redisVenueDao, dailyPickService)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(venueHandler, watchlistHandler, muxRouter)

	// initialize pint watch server
	pintWatchHttpServer := server.NewPintWatchHttpServer(router, muxRouter)

	return &Container{
		RedisClient:            redisClient,
		RedisVenueDao:          redisVenueDao,
		TapListAPI:             tapListAPI,
		VenueService:           venueService,
		WatchlistService:       watchlistService,
		DailyPickService:       dailyPickService,
		VenuesRefresherService: venuesRefresherService,
		VenueHandler:           venueHandler,
		WatchlistHandler:       watchlistHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		PintWatchHttpServer:    pintWatchHttpServer,
	}
}
