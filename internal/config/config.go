package config

import (
	"os"
	"strconv"
	"strings"

	"pdf-toolkit/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	MaxFileSize     int64
	LogLevel        string
	DefaultLanguage string
	AllowedOrigins  []string
	ValidationMode  string
}

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:4173",
	"http://localhost:3000",
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:     getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		DefaultLanguage: strings.ToLower(getEnvOrDefault("DEFAULT_LANGUAGE", "en")),
		AllowedOrigins:  getEnvListOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		ValidationMode:  strings.ToLower(getEnvOrDefault("PDF_VALIDATION", "relaxed")),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum accepted request body size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetDefaultLanguage returns the fallback UI and filename language
func (c *AppConfig) GetDefaultLanguage() string {
	return c.DefaultLanguage
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetValidationMode returns "relaxed" or "strict"
func (c *AppConfig) GetValidationMode() string {
	return c.ValidationMode
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
