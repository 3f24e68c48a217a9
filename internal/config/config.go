package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Catalog   CatalogConfig
	Narrative NarrativeConfig
	Settings  SettingsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// CatalogConfig controls catalog refresh behaviour.
type CatalogConfig struct {
	// RefreshCron is the cron schedule for catalog refreshes.
	// Empty disables scheduled refresh; the startup load still runs.
	RefreshCron string

	// NAVFeedURL is the AMFI NAV feed. Empty uses the public default.
	NAVFeedURL string

	// NAVOverlay enables overlaying feed NAVs during refresh.
	NAVOverlay bool
}

// NarrativeConfig controls the Gemini narrative generator.
type NarrativeConfig struct {
	Model  string
	APIKey string // fallback when no key is stored in settings
}

// SettingsConfig holds the settings store configuration.
type SettingsConfig struct {
	// FernetKey encrypts sensitive settings at rest. Empty disables
	// encrypted settings.
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/fund_advisor.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitEnv("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		Catalog: CatalogConfig{
			RefreshCron: getEnv("CATALOG_REFRESH_CRON", ""),
			NAVFeedURL:  getEnv("AMFI_NAV_URL", ""),
			NAVOverlay:  getEnv("AMFI_NAV_OVERLAY", "false") == "true",
		},
		Narrative: NarrativeConfig{
			Model:  getEnv("NARRATIVE_MODEL", "gemini-2.0-flash"),
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Settings: SettingsConfig{
			FernetKey: getEnv("SETTINGS_FERNET_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitEnv gets a comma-separated environment variable or returns a default
// list.
func splitEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
