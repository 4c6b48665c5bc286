package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Image upload storage. When BlobEndpoint is empty, uploads fall back
	// to the local filesystem under UploadDir.
	BlobEndpoint  string
	BlobAccessKey string
	BlobSecretKey string
	BlobBucket    string
	BlobUseSSL    bool
	UploadDir     string

	// OCR proxy
	AnthropicAPIKey string
	OCRModel        string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "sqlite"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		BlobEndpoint:      getEnv("BLOB_ENDPOINT", ""),
		BlobAccessKey:     getEnv("BLOB_ACCESS_KEY", ""),
		BlobSecretKey:     getEnv("BLOB_SECRET_KEY", ""),
		BlobBucket:        getEnv("BLOB_BUCKET", "feedback"),
		BlobUseSSL:        getEnvAsBool("BLOB_USE_SSL", true),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
		OCRModel:          getEnv("OCR_MODEL", "claude-3-5-haiku-latest"),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required for %s", cfg.DBType)
	}
	if cfg.BlobEndpoint != "" {
		if cfg.BlobAccessKey == "" || cfg.BlobSecretKey == "" {
			return nil, fmt.Errorf("BLOB_ACCESS_KEY and BLOB_SECRET_KEY are required when BLOB_ENDPOINT is set")
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
