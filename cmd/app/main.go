package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/seatbook/api"
	"github.com/Domenick1991/seatbook/config"
	"github.com/Domenick1991/seatbook/internal/bootstrap"
	"github.com/Domenick1991/seatbook/internal/cache"
	"github.com/Domenick1991/seatbook/internal/kafka"
	"github.com/Domenick1991/seatbook/internal/logger"
	"github.com/Domenick1991/seatbook/internal/repository"
	"github.com/Domenick1991/seatbook/internal/service/booking"
	"github.com/Domenick1991/seatbook/internal/service/events"
	"github.com/Domenick1991/seatbook/internal/service/flights"
	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal("load config", "path", cfgPath, "error", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Service: "seatbook"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := repository.NewBookingRegistry()

	var (
		flightCache  flights.FlightCache
		bookingCache booking.Cache
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, reads fall back to the registry", "addr", cfg.Redis.Addr, "error", err)
		}
		flightCache, bookingCache = redisCache, redisCache
	}

	var publisher *events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		publisher = events.NewPublisher(producer, cfg.Kafka.BookingEventsTopic, log,
			events.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	flightService := flights.NewFlightService(registry, flightCache, publisher, log)
	bookingService := booking.NewBookingService(registry,
		booking.WithCache(bookingCache),
		booking.WithPublisher(publisher),
		booking.WithLogger(log),
	)

	for _, f := range cfg.Flights {
		if _, err := flightService.AddFlight(ctx, flights.CreateFlightInput{
			ID:          f.ID,
			Origin:      f.Origin,
			Destination: f.Destination,
			TotalSeats:  f.TotalSeats,
		}); err != nil {
			log.Fatal("seed flight", "flight_id", f.ID, "error", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.RouterConfig{DocsEnabled: cfg.HTTP.DocsEnabled}, flightService, bookingService)

	if err := bootstrap.Run(ctx, cfg, router, log); err != nil {
		log.Fatal("server error", "error", err)
	}
	log.Info("server stopped")
}
