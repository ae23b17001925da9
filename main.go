package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/paperdeck-be/internal/analysis"
	"github.com/isdelr/paperdeck-be/internal/api"
	"github.com/isdelr/paperdeck-be/internal/auth"
	"github.com/isdelr/paperdeck-be/internal/config"
	"github.com/isdelr/paperdeck-be/internal/database"
	"github.com/isdelr/paperdeck-be/internal/logger"
	"github.com/isdelr/paperdeck-be/internal/monitoring"
	"github.com/isdelr/paperdeck-be/internal/payments"
	"github.com/isdelr/paperdeck-be/internal/pdf"
	"github.com/isdelr/paperdeck-be/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel)

	// Ensure the upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up external provider adapters
	extractor := pdf.NewExtractor()
	analyzer := analysis.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ProviderTimeout)
	checkout := payments.NewStripeClient(cfg.StripeAPIKey, cfg.StripePriceID, cfg.SuccessURL, cfg.CancelURL, cfg.ProviderTimeout)

	// Set up services
	eventService := services.NewEventService(db)
	userService := services.NewUserService(db, eventService)
	paperService := services.NewPaperService(db, userService, eventService, extractor, analyzer, cfg.UploadDir)

	// Set up and run the background premium-expiry sweeper
	sweeper, err := monitoring.NewPremiumSweeper(userService, eventService, cfg.PremiumSweepSpec)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure premium-expiry sweeper")
	}
	go sweeper.Run()

	// Set up router
	tokenManager := auth.NewManager(cfg.JWTSecret)
	router := api.NewRouter(api.RouterDeps{
		TokenManager:   tokenManager,
		UserService:    userService,
		PaperService:   paperService,
		EventService:   eventService,
		Checkout:       checkout,
		FrontendOrigin: cfg.FrontendOrigin,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
