// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for the server, outbound fetches, rate limiting and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Fetch contains outbound request configuration
	Fetch FetchConfig `yaml:"fetch"`

	// RateLimit contains per-IP rate limiting configuration
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`
}

// FetchConfig holds outbound fetch configuration
type FetchConfig struct {
	// TimeoutSeconds bounds a page fetch; 0 leaves the client without a timeout
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	// Requests allowed per window; 0 disables rate limiting
	Requests int `yaml:"requests"`

	// WindowSeconds is the length of the window
	WindowSeconds int `yaml:"window_seconds"`

	// TrustProxy keys limits on X-Forwarded-For; set only behind a trusted proxy
	TrustProxy bool `yaml:"trust_proxy"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// LoadFromEnv loads configuration from environment variables. When CONFIG_FILE is set,
// values present in that YAML file override the environment.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "3000"),
		},
		Fetch: FetchConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("FETCH_TIMEOUT", 0),
		},
		RateLimit: RateLimitConfig{
			Requests:      getEnvAsIntOrDefault("RATE_LIMIT", 100),
			WindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW", 60),
			TrustProxy:    getEnvAsBoolOrDefault("TRUST_PROXY", false),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadFile overlays values from a YAML file onto cfg
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Fetch.TimeoutSeconds < 0 {
		return errors.New("fetch timeout cannot be negative")
	}

	if c.RateLimit.Requests < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RateLimit.Requests > 0 && c.RateLimit.WindowSeconds < 1 {
		return errors.New("rate window must be at least 1 second")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
