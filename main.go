// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"villamar/config"
	"villamar/cron"
	"villamar/database"
	reservationRepoPkg "villamar/database/repository/reservation"
	seasonRepoPkg "villamar/database/repository/season"
	settingsRepoPkg "villamar/database/repository/settings"
	"villamar/handlers"
	"villamar/middleware"
	"villamar/routes"
	"villamar/services/booking"
	"villamar/services/notification"
	"villamar/services/tasks"
	"villamar/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	seasonRepo := seasonRepoPkg.NewMongoSeasonRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()

	if err := seasonRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure season indexes: %v", err)
	}
	if err := reservationRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure reservation indexes: %v", err)
	}

	// services.
	paymentHandler := booking.NewStripePaymentHandler(logger)
	notificationService := notification.NewSMTPNotificationService(logger)
	followupEnqueuer := tasks.NewAsynqFollowupEnqueuer()

	bookingService := &booking.DefaultBookingService{
		SeasonRepo:      seasonRepo,
		SettingsRepo:    settingsRepo,
		ReservationRepo: reservationRepo,
		PaymentHandler:  paymentHandler,
		NotificationSvc: notificationService,
		Sessions:        booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Followups:       followupEnqueuer,
		Cache:           booking.NewRedisCalendarCache(utils.GetCacheClient()),
		Currency:        config.AppConfig.Currency,
		Location:        config.PropertyLocation(),
	}

	// Background followup worker and reconciliation sweep.
	cron.InitFollowupWorker(reservationRepo, paymentHandler, notificationService, followupEnqueuer)

	// Dependency health monitor behind /health.
	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache":    utils.GetCacheClient(),
			"sessions": utils.GetSessionCacheClient(),
		},
		database.MongoClient,
	)

	// handlers.
	stayHandler := handlers.NewStayHandler(bookingService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	adminHandler := handlers.NewAdminHandler(seasonRepo, settingsRepo, logger)

	handlerBundle := &handlers.HandlerBundle{
		QuoteStayHandler:    stayHandler.QuoteStayHandler,
		ValidateStayHandler: stayHandler.ValidateStayHandler,
		AvailabilityHandler: stayHandler.AvailabilityHandler,
		CalendarHandler:     stayHandler.CalendarHandler,

		OpenSessionHandler:       bookingHandler.OpenSessionHandler,
		ConfirmBookingHandler:    bookingHandler.ConfirmBookingHandler,
		ConfirmPaymentHandler:    bookingHandler.ConfirmPaymentHandler,
		CancelReservationHandler: bookingHandler.CancelReservationHandler,

		AdminHandler: adminHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

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
