// Package config has the configuration file for the app
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. The limits bound worst-case
// parse and match cost; exceeding a document limit is a hard failure at the
// boundary, while the vocabulary limit truncates silently.
type Config struct {
	Env               string
	LogLevel          string
	MaxDocumentPages  int   // Maximum pages per diet document
	MaxDocumentBytes  int64 // Maximum total document text size in bytes
	MaxVocabularySize int   // Vocabulary entries kept for receipt matching
	MaxReceiptLines   int   // Receipt lines scanned per request
	MaxBlockLines     int   // Lines read per substitution block
}

// Load loads and validates configuration from environment variables. A .env
// file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnvWithDefault("ENV", "dev"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		MaxDocumentPages:  getIntEnvWithDefault("MAX_DOCUMENT_PAGES", 50),
		MaxDocumentBytes:  getInt64EnvWithDefault("MAX_DOCUMENT_BYTES", 10*1024*1024),
		MaxVocabularySize: getIntEnvWithDefault("MAX_VOCABULARY_SIZE", 500),
		MaxReceiptLines:   getIntEnvWithDefault("MAX_RECEIPT_LINES", 2000),
		MaxBlockLines:     getIntEnvWithDefault("MAX_BLOCK_LINES", 20),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if err := validateCount(cfg.MaxDocumentPages, 1, 500, "MAX_DOCUMENT_PAGES"); err != nil {
		return err
	}
	if cfg.MaxDocumentBytes < 1024 || cfg.MaxDocumentBytes > 100*1024*1024 {
		return fmt.Errorf("MAX_DOCUMENT_BYTES must be between 1KB and 100MB, got: %d", cfg.MaxDocumentBytes)
	}
	if err := validateCount(cfg.MaxVocabularySize, 1, 10000, "MAX_VOCABULARY_SIZE"); err != nil {
		return err
	}
	if err := validateCount(cfg.MaxReceiptLines, 1, 100000, "MAX_RECEIPT_LINES"); err != nil {
		return err
	}
	if err := validateCount(cfg.MaxBlockLines, 1, 200, "MAX_BLOCK_LINES"); err != nil {
		return err
	}
	return nil
}

// validateEnv validates the ENV environment variable
func validateEnv(env string) error {
	if env == "" {
		return fmt.Errorf("ENV cannot be empty")
	}

	validEnvs := []string{"dev", "staging", "prod", "test"}
	env = strings.ToLower(env)

	for _, validEnv := range validEnvs {
		if env == validEnv {
			return nil
		}
	}

	return fmt.Errorf("ENV must be one of: %v, got: %s", validEnvs, env)
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateCount validates an integer limit against an inclusive range.
func validateCount(value, min, max int, name string) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got: %d", name, min, max, value)
	}
	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64EnvWithDefault gets an environment variable as int64 with a default value
func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"ENV",
		"LOG_LEVEL",
		"MAX_DOCUMENT_PAGES",
		"MAX_DOCUMENT_BYTES",
		"MAX_VOCABULARY_SIZE",
		"MAX_RECEIPT_LINES",
		"MAX_BLOCK_LINES",
	}
}
