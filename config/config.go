package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  string
	Debug bool

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Adzuna job search
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string

	// Scratch directory for uploaded files during parsing
	TempDir string

	// Timeouts
	HTTPTimeoutSeconds int
	LLMTimeoutSeconds  int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server
		Port:  getEnv("PORT", "3001"),
		Debug: getEnvBool("DEBUG", false),

		// Gemini
		GeminiAPIKey: getEnv("GOOGLE_AI_STUDIO_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Adzuna
		AdzunaAppID:   getEnv("ADZUNA_APP_ID", ""),
		AdzunaAppKey:  getEnv("ADZUNA_APP_KEY", ""),
		AdzunaCountry: getEnv("ADZUNA_COUNTRY", "us"),

		// Scratch directory
		TempDir: getEnv("TEMP_DIR", "temp"),

		// Timeouts
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		LLMTimeoutSeconds:  getEnvInt("LLM_TIMEOUT_SECONDS", 60),
	}
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return &ConfigError{Field: "GOOGLE_AI_STUDIO_KEY", Message: "GOOGLE_AI_STUDIO_KEY is required for title inference"}
	}
	if c.AdzunaAppID == "" {
		return &ConfigError{Field: "ADZUNA_APP_ID", Message: "ADZUNA_APP_ID is required for job search"}
	}
	if c.AdzunaAppKey == "" {
		return &ConfigError{Field: "ADZUNA_APP_KEY", Message: "ADZUNA_APP_KEY is required for job search"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
