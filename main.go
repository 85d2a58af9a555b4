// File: espuma/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"espuma/config"
	"espuma/cron"
	"espuma/database"
	bookingRepo "espuma/database/repository/booking"
	"espuma/handlers"
	"espuma/middleware"
	"espuma/routes"
	"espuma/services/booking"
	"espuma/services/cart"
	"espuma/services/schedule"
	"espuma/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCartCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	store := bookingRepo.NewMongoBookingStore()
	cartStore := cart.NewRedisCartStore()

	// services.
	bookingService := &booking.DefaultBookingService{
		Store: store,
		Grid:  schedule.FromConfig(),
		Hold:  time.Duration(config.AppConfig.HoldMinutes) * time.Minute,
	}
	cartService := &cart.DefaultCartService{
		Store:   cartStore,
		VATRate: config.AppConfig.VATRate,
	}
	checkoutService := &booking.DefaultCheckoutService{
		Engine: bookingService,
		Cart:   cartService,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, checkoutService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)

	// Background expiry sweep and health monitoring.
	cron.InitSweepWorker(bookingService)
	utils.StartHealthMonitor(utils.GetCartCacheClient(), database.MongoClient)

	routes.RegisterRoutes(router, bookingHandler, cartHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
