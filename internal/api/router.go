package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/handlers"
	custommiddleware "github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/middleware"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/config"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/repository"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	advisorService *service.AdvisorService,
	settingRepo *repository.SettingRepository,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/advice", func(r chi.Router) {
			adviceHandler := handlers.NewAdviceHandler(advisorService)
			r.Post("/analyze", adviceHandler.Analyze)
		})

		r.Route("/fund", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(advisorService)
			r.Get("/categories", fundHandler.Categories)
			r.Post("/top", fundHandler.TopFunds)
			r.Get("/{fundID}", fundHandler.FundDetails)
		})

		r.Route("/developer", func(r chi.Router) {
			developerHandler := handlers.NewDeveloperHandler(settingRepo)
			r.Put("/narrative-key", developerHandler.SetNarrativeKey)
		})
	})

	return r
}
