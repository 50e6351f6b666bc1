// Package config handles runtime configuration for the items server,
// read once from the environment at startup.
package config

import "os"

// Config holds runtime settings for the items server.
//
// Fields:
//   - Addr: bind address for the HTTP server.
//   - MongoURI: MongoDB connection string.
//   - DBName: MongoDB database name.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	Addr     string
	MongoURI string
	DBName   string
	LogLevel string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.MongoURI = "mongodb://localhost:27017"
	c.DBName = "app"
	c.LogLevel = "info"
}

// Load builds a Config by applying defaults and overlaying values from the
// environment (ADDR, MONGODB_URI, MONGODB_DB_NAME, LOG_LEVEL).
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.Addr = getEnv("ADDR", cfg.Addr)
	cfg.MongoURI = getEnv("MONGODB_URI", cfg.MongoURI)
	cfg.DBName = getEnv("MONGODB_DB_NAME", cfg.DBName)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
