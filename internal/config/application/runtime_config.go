package application

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Storage engines
const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, and .env file
type RuntimeConfig struct {
	// API Configuration
	APIKey  string
	APIPort string

	// Development Mode
	DevMode bool

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Storage Configuration
	Store         string
	DBPath        string
	MongoURI      string
	MongoDatabase string

	// Registry config file path, optional
	ConfigPath string
}

// Flags carries values given on the command line; empty means unset
type Flags struct {
	APIKey        string
	Port          string
	LogLevel      string
	LogFormat     string
	LogOutput     string
	Store         string
	DBPath        string
	MongoURI      string
	MongoDatabase string
	ConfigPath    string
	DevMode       bool
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > defaults
func LoadRuntimeConfig(flags Flags) *RuntimeConfig {
	cfg := &RuntimeConfig{
		APIKey:        getValue(flags.APIKey, "CHECKHUB_API_KEY", ""),
		APIPort:       getValue(flags.Port, "CHECKHUB_API_PORT", "8080"),
		DevMode:       flags.DevMode || getBoolEnv("CHECKHUB_DEV_MODE", false),
		LogLevel:      getValue(flags.LogLevel, "CHECKHUB_LOG_LEVEL", "INFO"),
		LogFormat:     getValue(flags.LogFormat, "CHECKHUB_LOG_FORMAT", "text"),
		LogOutput:     getValue(flags.LogOutput, "CHECKHUB_LOG_OUTPUT", "stdout"),
		Store:         strings.ToLower(getValue(flags.Store, "CHECKHUB_STORE", StoreSQLite)),
		DBPath:        getValue(flags.DBPath, "CHECKHUB_DB_PATH", "checks.db"),
		MongoURI:      getValue(flags.MongoURI, "CHECKHUB_MONGO_URI", ""),
		MongoDatabase: getValue(flags.MongoDatabase, "CHECKHUB_MONGO_DATABASE", "checkhub"),
		ConfigPath:    getValue(flags.ConfigPath, "CHECKHUB_CONFIG", ""),
	}

	return cfg
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}

// Validate checks that required configuration is present
func (c *RuntimeConfig) Validate() error {
	if c.APIKey == "" {
		return &ConfigError{Field: "api-key", Message: "API key is required (set CHECKHUB_API_KEY or use --api-key flag)"}
	}
	if !slices.Contains([]string{StoreSQLite, StoreMongo, StoreMemory}, c.Store) {
		return &ConfigError{Field: "store", Message: fmt.Sprintf("unknown store %q (want sqlite, mongo or memory)", c.Store)}
	}
	if c.Store == StoreMongo && c.MongoURI == "" {
		return &ConfigError{Field: "mongo-uri", Message: "Mongo URI is required when store is mongo (set CHECKHUB_MONGO_URI or use --mongo-uri flag)"}
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
