package config

import (
	"os"
	"strconv"

	"govista/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Database DatabaseConfig
	Data     DataConfig
	Ops      OpsConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AIConfig holds narrative analyst (LLM) settings. An empty key switches
// the application to the mock client.
type AIConfig struct {
	OpenAIKey   string
	OpenAIModel string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}

// DatabaseConfig holds the optional dashboard store connection. An empty
// URL disables dashboard persistence.
type DatabaseConfig struct {
	URL string
}

// DataConfig holds ingestion limits
type DataConfig struct {
	MaxUploadMB int
	SampleRows  int // rows forwarded to the analyst alongside the stats
}

// OpsConfig holds the debug/health listener settings
type OpsConfig struct {
	Enabled bool
	Port    string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		AI: AIConfig{
			OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
			OpenAIModel: getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL:     os.Getenv("OPENAI_BASE_URL"),
			MaxTokens:   getEnvIntOrDefault("OPENAI_MAX_TOKENS", 2048),
			Temperature: getEnvFloatOrDefault("OPENAI_TEMPERATURE", 0.2),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Data: DataConfig{
			MaxUploadMB: getEnvIntOrDefault("MAX_UPLOAD_MB", 25),
			SampleRows:  getEnvIntOrDefault("ANALYST_SAMPLE_ROWS", 5),
		},
		Ops: OpsConfig{
			Enabled: getEnvBoolOrDefault("OPS_ENABLED", false),
			Port:    getEnvOrDefault("OPS_PORT", "6060"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	if config.Data.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.AI.MaxTokens <= 0 {
		return errors.ConfigInvalid("OPENAI_MAX_TOKENS must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
