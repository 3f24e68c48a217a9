package service

import (
	"database/sql"
	"time"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/catalog"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/database"
)

// AppVersion is the application version reported by the version endpoint.
const AppVersion = "1.0.0"

// SystemService handles system-level operations like health checks and
// version reporting.
type SystemService struct {
	db    *sql.DB
	store *catalog.Store
}

// NewSystemService creates a new SystemService.
func NewSystemService(db *sql.DB, store *catalog.Store) *SystemService {
	return &SystemService{db: db, store: store}
}

// CheckHealth verifies database connectivity.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CatalogStatus reports the size and age of the published catalog snapshot.
func (s *SystemService) CatalogStatus() (int, time.Time) {
	c := s.store.Get()
	return c.Size(), c.LoadedAt()
}
