package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"geecurly/config"
	"geecurly/cron"
	"geecurly/database"
	bookingRepo "geecurly/database/repository/booking"
	catalogRepo "geecurly/database/repository/catalog"
	"geecurly/handlers"
	"geecurly/routes"
	"geecurly/services/booking"
	"geecurly/services/chat"
	"geecurly/services/notification"
	"geecurly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionStore()
	utils.InitMemoryStore()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	catalog := catalogRepo.NewMongoCatalogRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	if err := catalog.EnsureSeedData(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
	}

	// services.
	notificationService := notification.NewDefaultNotificationService()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	bookingService := booking.NewDefaultBookingService(catalog, bookings, notificationService, asynqClient)

	sessionStore := chat.NewRedisSessionStore(utils.GetSessionClient(), chat.SessionTTL)
	memoryStore := chat.NewRedisMemoryStore(utils.GetMemoryClient(), chat.MemoryTTL)
	chatService := chat.NewDefaultChatService(catalog, bookingService, sessionStore, memoryStore)

	handlers.CatalogRepo = catalog
	handlers.BookingSvc = bookingService
	handlers.ChatSvc = chatService

	routes.RegisterRoutes(router)

	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionClient(), utils.GetMemoryClient()},
		database.MongoClient,
	)

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
