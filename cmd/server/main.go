package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/amfi"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/handlers"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/config"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/database"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/narrative"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/repository"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	settingRepo, err := repository.NewSettingRepository(db, cfg.Settings.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create setting repository: %v", err)
	}

	// Create services
	var navFetcher service.NAVFetcher
	if cfg.Catalog.NAVOverlay {
		navFetcher = amfi.NewClient(cfg.Catalog.NAVFeedURL)
	}
	catalogService := service.NewCatalogService(fundRepo, navFetcher)

	ctx := context.Background()
	if err := catalogService.Refresh(ctx); err != nil {
		log.Fatalf("Failed to load fund catalog: %v", err)
	}

	generator := buildNarrativeGenerator(ctx, cfg, settingRepo)
	advisorService := service.NewAdvisorService(catalogService.Store(), generator)
	systemService := service.NewSystemService(db, catalogService.Store())

	// Schedule periodic catalog refreshes
	scheduler := cron.New()
	if cfg.Catalog.RefreshCron != "" {
		_, err := scheduler.AddFunc(cfg.Catalog.RefreshCron, func() {
			refreshCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := catalogService.Refresh(refreshCtx); err != nil {
				log.Printf("Scheduled catalog refresh failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid catalog refresh schedule %q: %v", cfg.Catalog.RefreshCron, err)
		}
		scheduler.Start()
		log.Printf("Catalog refresh scheduled: %s", cfg.Catalog.RefreshCron)
	}

	// Create router
	router := api.NewRouter(systemService, advisorService, settingRepo, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// buildNarrativeGenerator resolves the Gemini API key, preferring the
// encrypted setting over the environment, and returns nil when no key
// is available so the advisor falls back to template analysis.
func buildNarrativeGenerator(ctx context.Context, cfg *config.Config, settingRepo *repository.SettingRepository) narrative.Generator {
	apiKey := cfg.Narrative.APIKey
	stored, err := settingRepo.Get(handlers.NarrativeKeySetting)
	if err == nil && stored != "" {
		apiKey = stored
	} else if err != nil && !errors.Is(err, apperrors.ErrSettingNotFound) {
		log.Printf("Failed to read narrative API key setting: %v", err)
	}

	if apiKey == "" {
		log.Println("No narrative API key configured, using template analysis")
		return nil
	}

	generator, err := narrative.NewGemini(ctx, apiKey, cfg.Narrative.Model)
	if err != nil {
		log.Printf("Failed to initialise narrative generator: %v", err)
		return nil
	}
	return generator
}
