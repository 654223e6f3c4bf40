package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/database"
	bookingRepoPkg "frontdesk/database/repository/booking"
	"frontdesk/handlers"
	"frontdesk/routes"
	"frontdesk/services/booking"
	"frontdesk/services/conversation"
	"frontdesk/services/notification"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitStateCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	notifier := notification.NewDefaultNotifier()
	notifier.Subscribe(notification.EventBookingCreated, func(e notification.Event) {
		if ev, ok := e.(notification.BookingCreatedEvent); ok {
			logger.Info("Reservation confirmed",
				zap.String("bookingID", ev.Booking.ID),
				zap.String("customer", ev.Booking.CustomerName),
			)
		}
	})

	bookingService := booking.NewDefaultBookingService(bookingRepo, notifier)

	loader := config.NewRestaurantConfigLoader(config.AppConfig.RestaurantConfigPath)
	if err := loader.LoadConfig(context.Background()); err != nil {
		logger.Sugar().Warnf("main: restaurant config not loaded, using built-in knowledge base: %v", err)
	}

	stateStore := conversation.NewRedisStateStore(
		utils.GetStateCacheClient(),
		time.Duration(config.AppConfig.StateSnapshotTTLMin)*time.Minute,
	)
	sessions := conversation.NewSessionManager(func() *conversation.Engine {
		return conversation.NewEngine(loader, bookingService)
	}, stateStore, notifier)

	conversationHandler := handlers.NewConversationHandler(sessions)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ConversationMessageHandler: conversationHandler.MessageHandler,
		ConversationResetHandler:   conversationHandler.ResetHandler,
		ConversationStateHandler:   conversationHandler.StateHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,
	}

	// Register routes with the assembled handler bundle.
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
