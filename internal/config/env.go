package config

import (
	"fmt"
	"os"
)

// Store backends
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// APIConfig holds the API process configuration
type APIConfig struct {
	Port     string
	Store    string
	DataFile string
	DBConn   string
	LogLevel string
	Owner    string
}

// NewAPIConfig loads configuration from environment variables
func NewAPIConfig() (*APIConfig, error) {
	cfg := &APIConfig{
		Port:     getEnv("PORT", "8080"),
		Store:    getEnv("STORE", StoreFile),
		DataFile: getEnv("DATA_FILE", "dashboard.yaml"),
		DBConn:   getEnv("DB_CONN", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Owner:    getEnv("OWNER", ""),
	}

	switch cfg.Store {
	case StoreFile:
		if cfg.DataFile == "" {
			return nil, fmt.Errorf("DATA_FILE is required for the file store")
		}
	case StorePostgres:
		if cfg.DBConn == "" {
			return nil, fmt.Errorf("DB_CONN is required for the postgres store")
		}
	default:
		return nil, fmt.Errorf("unknown STORE %q (want %s or %s)", cfg.Store, StoreFile, StorePostgres)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
