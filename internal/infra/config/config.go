package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DataFile    string
	ExportFile  string // optional xlsx snapshot written on exit
	LogLevel    string
	Environment string
}

// Load reads configuration from environment variables and a .env file (if
// present). godotenv will not override variables that are already set, and
// a missing .env file is fine.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		DataFile:    getenv("DATA_FILE", "records.csv"),
		ExportFile:  os.Getenv("EXPORT_FILE"),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL", "info")),
		Environment: strings.ToLower(getenv("ENVIRONMENT", "development")),
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
