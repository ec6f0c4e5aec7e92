package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ManasaGone/BookingService/clients"
	"github.com/ManasaGone/BookingService/config"
	"github.com/ManasaGone/BookingService/database"
	"github.com/ManasaGone/BookingService/database/repository"
	"github.com/ManasaGone/BookingService/handlers"
	"github.com/ManasaGone/BookingService/middleware"
	"github.com/ManasaGone/BookingService/routes"
	"github.com/ManasaGone/BookingService/services/booking"
	"github.com/ManasaGone/BookingService/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories and directory clients.
	bookingRepository := repository.NewMongoBookingRepo()
	vehicleDirectory := clients.NewHTTPVehicleDirectory()
	routeDirectory := clients.NewHTTPRouteDirectory()

	// Services.
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepository,
		Vehicles: vehicleDirectory,
		Routes:   routeDirectory,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8084"
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
