// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort        = 8080
	defaultMaxUpload   = 10 << 20 // 10 MiB
	defaultRewriteTier = "standard"
)

// ServerConfig holds configuration for the HTTP API server.
type ServerConfig struct {
	Port           int
	DatabaseURL    string
	GeminiAPIKey   string
	MaxUploadBytes int64
	RewriteTier    string
}

// NewServerConfig creates a server configuration from environment variables.
// It reads DATABASE_URL (required), PORT (default: 8080), GEMINI_API_KEY
// (optional; AI endpoints fall back to canned output without it),
// MAX_UPLOAD_BYTES (default: 10 MiB) and REWRITE_TIER (default: standard).
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	port := defaultPort
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = p
	}

	maxUpload := int64(defaultMaxUpload)
	if uploadStr := os.Getenv("MAX_UPLOAD_BYTES"); uploadStr != "" {
		n, err := strconv.ParseInt(uploadStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %v", err)
		}
		maxUpload = n
	}

	tier := os.Getenv("REWRITE_TIER")
	if tier == "" {
		tier = defaultRewriteTier
	}

	config := &ServerConfig{
		Port:           port,
		DatabaseURL:    databaseURL,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		MaxUploadBytes: maxUpload,
		RewriteTier:    tier,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d (must be 1-65535)", c.Port)
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got: %d", c.MaxUploadBytes)
	}
	switch c.RewriteTier {
	case "lite", "standard", "advanced":
	default:
		return fmt.Errorf("invalid REWRITE_TIER: %q (must be lite, standard or advanced)", c.RewriteTier)
	}
	return nil
}
