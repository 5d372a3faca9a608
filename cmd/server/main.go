package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/alejandrorivera22/great-travel/internal/config"
	"github.com/alejandrorivera22/great-travel/internal/database"
	"github.com/alejandrorivera22/great-travel/internal/handler"
	"github.com/alejandrorivera22/great-travel/internal/middleware"
	"github.com/alejandrorivera22/great-travel/internal/queue"
	"github.com/alejandrorivera22/great-travel/internal/repository"
	"github.com/alejandrorivera22/great-travel/internal/router"
	"github.com/alejandrorivera22/great-travel/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env always wins

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	store := repository.NewStore(db)

	// Redis backs the catalog cache and the auth rate limiter; both
	// degrade to no-ops when the client is nil.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}

	var events service.EventPublisher = service.NopPublisher{}
	amqpURL := os.Getenv("RABBITMQ_URL")
	if amqpURL == "" {
		amqpURL = os.Getenv("AMQP_URL")
	}
	if amqpURL != "" {
		events = &queue.Publisher{URL: amqpURL}
		go func() {
			if err := queue.StartBookingConsumer(amqpURL); err != nil {
				log.Printf("booking-consumer: %v", err)
			}
		}()
	}

	dates := service.RandomDates{}
	customers := service.NewCustomerService(store, cfg.BcryptCost)
	catalog := service.NewCatalogService(store)
	tickets := service.NewTicketService(store, dates, events)
	reservations := service.NewReservationService(store, events)
	tours := service.NewTourService(store, dates, events)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	router.Register(e, router.Handlers{
		Auth:        handler.NewAuthHandler(customers, cfg.JWTSecret, cfg.AccessTTLMin),
		Customer:    handler.NewCustomerHandler(customers),
		Fly:         handler.NewFlyHandler(catalog),
		Hotel:       handler.NewHotelHandler(catalog),
		Ticket:      handler.NewTicketHandler(tickets),
		Reservation: handler.NewReservationHandler(reservations),
		Tour:        handler.NewTourHandler(tours),
	}, router.Middleware{
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
