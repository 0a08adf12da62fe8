package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputHuman = "human"
)

// Config holds the defaults for command flags.
type Config struct {
	Output   string
	LogLevel string
	NoColor  bool
	Inspect  bool
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	return &Config{
		Output:   getEnv("LEADSCORE_OUTPUT", OutputJSON),
		LogLevel: getEnv("LEADSCORE_LOG_LEVEL", "warn"),
		NoColor:  getEnvAsBool("LEADSCORE_NO_COLOR", false),
		Inspect:  getEnvAsBool("LEADSCORE_INSPECT", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
