// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// Object storage (S3-compatible: MinIO/LocalStack locally, AWS S3 in production)
	StorageBucket    string
	StorageRegion    string
	StorageAccessKey string
	StorageSecretKey string
	// StorageEndpoint overrides the AWS endpoint for local development.
	// When non-empty, path-style addressing is used and public URLs are built
	// as "{endpoint}/{bucket}/{key}". Empty targets real AWS S3.
	StorageEndpoint string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	// STORAGE_ENDPOINT falls back to local MinIO only when the variable is
	// entirely absent; an explicitly empty value selects real AWS addressing.
	endpoint := "http://localhost:9000"
	if v, ok := os.LookupEnv("STORAGE_ENDPOINT"); ok {
		endpoint = v
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		StorageBucket:    getEnv("STORAGE_BUCKET", "products"),
		StorageRegion:    getEnv("STORAGE_REGION", "us-east-1"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageEndpoint:  endpoint,
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
