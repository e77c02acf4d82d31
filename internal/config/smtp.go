// Package config provides SMTP configuration for outgoing mail.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// SMTPConfig holds configuration for the password-reset mailer.
// When Host is empty the mailer runs in dev mode and logs messages
// instead of sending them.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPConfig creates an SMTP configuration from environment variables.
// It reads SMTP_HOST (optional), SMTP_PORT (default: 587), SMTP_USERNAME,
// SMTP_PASSWORD and SMTP_FROM (required when SMTP_HOST is set).
func NewSMTPConfig() (*SMTPConfig, error) {
	port := 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
		}
		port = p
	}

	config := &SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// DevMode reports whether the mailer should log instead of send.
func (c *SMTPConfig) DevMode() bool {
	return c.Host == ""
}

// Addr returns the host:port dial address.
func (c *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// normalize validates the configuration.
func (c *SMTPConfig) normalize() error {
	if c.Host == "" {
		return nil // dev mode, nothing else required
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("SMTP_PORT out of range: %d", c.Port)
	}
	if c.From == "" {
		return fmt.Errorf("SMTP_FROM is required when SMTP_HOST is set")
	}
	return nil
}
