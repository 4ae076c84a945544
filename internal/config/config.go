// Package config holds the runtime configuration of the backend.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Space separated list of origins that are allowed to use the API
	CORSAllowOrigins string

	// Serve pprof profiling endpoints under /debug/pprof
	EnablePprof bool
}

// Load reads the configuration from the environment. A .env file is
// loaded first when present so that local development does not need
// exported variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "data/tempo.db"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return parsed
}
