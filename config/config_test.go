package config

import (
	"os"
	"testing"
)

func cleanupEnv() {
	for _, key := range GetEnvVars() {
		_ = os.Unsetenv(key)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("Expected default env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.MaxDocumentPages != 50 {
		t.Errorf("Expected default MaxDocumentPages 50, got %d", cfg.MaxDocumentPages)
	}
	if cfg.MaxDocumentBytes != 10*1024*1024 {
		t.Errorf("Expected default MaxDocumentBytes 10MiB, got %d", cfg.MaxDocumentBytes)
	}
	if cfg.MaxVocabularySize != 500 {
		t.Errorf("Expected default MaxVocabularySize 500, got %d", cfg.MaxVocabularySize)
	}
	if cfg.MaxReceiptLines != 2000 {
		t.Errorf("Expected default MaxReceiptLines 2000, got %d", cfg.MaxReceiptLines)
	}
	if cfg.MaxBlockLines != 20 {
		t.Errorf("Expected default MaxBlockLines 20, got %d", cfg.MaxBlockLines)
	}
}

func TestLoadValidConfig(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	_ = os.Setenv("ENV", "staging")
	_ = os.Setenv("LOG_LEVEL", "debug")
	_ = os.Setenv("MAX_DOCUMENT_PAGES", "10")
	_ = os.Setenv("MAX_VOCABULARY_SIZE", "100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Env != "staging" {
		t.Errorf("Expected env staging, got %s", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.MaxDocumentPages != 10 {
		t.Errorf("Expected MaxDocumentPages 10, got %d", cfg.MaxDocumentPages)
	}
	if cfg.MaxVocabularySize != 100 {
		t.Errorf("Expected MaxVocabularySize 100, got %d", cfg.MaxVocabularySize)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	_ = os.Setenv("ENV", "production")

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid ENV")
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	_ = os.Setenv("LOG_LEVEL", "verbose")

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid LOG_LEVEL")
	}
}

func TestLoadOutOfRangeLimits(t *testing.T) {
	testCases := []struct {
		key   string
		value string
	}{
		{"MAX_DOCUMENT_PAGES", "0"},
		{"MAX_DOCUMENT_PAGES", "501"},
		{"MAX_DOCUMENT_BYTES", "512"},
		{"MAX_VOCABULARY_SIZE", "20000"},
		{"MAX_RECEIPT_LINES", "0"},
		{"MAX_BLOCK_LINES", "500"},
	}

	for _, tc := range testCases {
		cleanupEnv()
		_ = os.Setenv(tc.key, tc.value)

		if _, err := Load(); err == nil {
			t.Errorf("Expected error for %s=%s", tc.key, tc.value)
		}
	}
	cleanupEnv()
}

func TestGetEnvVars(t *testing.T) {
	vars := GetEnvVars()
	if len(vars) != 7 {
		t.Errorf("Expected 7 environment variables, got %d", len(vars))
	}
}
