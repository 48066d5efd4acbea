package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds client configuration
type Config struct {
	APIBaseURL     string
	StoreType      string
	StorePath      string
	StoreURL       string
	RequestTimeout time.Duration
	Debug          bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000/api"),
		StoreType:      getEnv("STORE_TYPE", "sqlite"),
		StorePath:      getEnv("STORE_PATH", "./wordadventure.db"),
		StoreURL:       getEnv("STORE_URL", ""),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 15*time.Second),
		Debug:          getBool("DEBUG", false),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}
