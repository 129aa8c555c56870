// File: calendai/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendai/config"
	"calendai/database"
	transcriptRepo "calendai/database/repository/transcript"
	"calendai/handlers"
	"calendai/middleware"
	"calendai/routes"
	"calendai/services/agent"
	"calendai/services/calendar"
	"calendai/services/extraction"
	"calendai/services/session"
	"calendai/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()

	// External collaborators.
	extractor, err := extraction.NewGeminiExtractor(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini extractor: %v", err)
	}
	gateway, err := calendar.NewGoogleGateway(ctx, config.AppConfig.GoogleCredentialsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar gateway: %v", err)
	}

	// Session store: Redis in production, in-memory when no address is set.
	var sessionStore session.Store
	if config.AppConfig.RedisAddr != "" {
		utils.InitSessionCache()
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		sessionStore = session.NewRedisStore(utils.GetSessionCacheClient(), ttl)
	} else {
		logger.Sugar().Warn("main: no Redis configured, sessions are process-local")
		sessionStore = session.NewMemoryStore()
	}

	// Optional Mongo-backed conversation log.
	var transcripts transcriptRepo.Repository
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		transcripts = transcriptRepo.NewMongoTranscriptRepo(config.AppConfig.DatabaseName)
	}

	utils.StartHealthMonitor(utils.SessionCacheClient, database.MongoClient)

	chatService := &agent.DefaultChatService{
		Sessions:    sessionStore,
		Extractor:   extractor,
		Calendar:    gateway,
		Parser:      agent.NewNaturalParser(),
		CalendarID:  config.AppConfig.CalendarID,
		Transcripts: transcripts,
	}
	chatHandler := handlers.NewChatHandler(chatService)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, chatHandler)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
