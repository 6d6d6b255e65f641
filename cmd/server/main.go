package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"freight/internal/app"
	"freight/internal/config"
	"freight/internal/handler"
	internalRedis "freight/internal/redis"
	"freight/internal/repository/memory"
	"freight/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so Redis can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize Redis when enabled. The service runs without it; Redis
	// only backs the response cache and idempotency middleware.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	// Wire dependencies.
	server := wireServer(redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Seed the in-memory stores. The catalog is immutable after this;
	// bookings are append-only and discarded on restart.
	rates := memory.SeedRates()
	rateCatalog := memory.NewRateCatalog(rates)
	bookingStore := memory.NewBookingStore(memory.SeedBookings(rates))

	// Initialize the response cache when Redis is available.
	var cacheStore *internalRedis.CacheStore
	if redisClient != nil {
		cacheStore = internalRedis.NewCacheStore(redisClient)
	}

	// Initialize services.
	rateService := service.NewRateService(rateCatalog)
	refs := service.NewReferenceGenerator(cfg.Booking.ReferencePrefix, rand.NewSource(time.Now().UnixNano()))
	bookingService := service.NewBookingService(bookingStore, rateCatalog, refs)

	// Initialize handlers.
	rateHandler := handler.NewRateHandler(rateService, cacheStore)
	bookingHandler := handler.NewBookingHandler(bookingService, cacheStore)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		RateHandler:    rateHandler,
		BookingHandler: bookingHandler,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
