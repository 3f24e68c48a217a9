package handlers

import (
	"net/http"
	"time"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// VersionResponse represents the version check response, including the
// published catalog snapshot's size and build time.
type VersionResponse struct {
	AppVersion      string    `json:"app_version"`
	CatalogFunds    int       `json:"catalog_funds"`
	CatalogLoadedAt time.Time `json:"catalog_loaded_at"`
}

// Version handles GET requests to retrieve version and catalog information.
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	size, loadedAt := h.systemService.CatalogStatus()

	respondJSON(w, http.StatusOK, VersionResponse{
		AppVersion:      service.AppVersion,
		CatalogFunds:    size,
		CatalogLoadedAt: loadedAt,
	})
}
