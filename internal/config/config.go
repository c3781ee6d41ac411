package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"nikofree-web/internal/models"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "your-secret-key-change-in-production"

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port     string
	Host     string
	Env      string
	Timezone string
}

type APIConfig struct {
	BaseURL       string // Backend REST API root
	ImageBaseURL  string // Root for relative image paths returned by the API
	Timeout       time.Duration
	EventsPerPage int
	Demo          bool // Serve fixture data instead of calling the API
}

type SessionConfig struct {
	Secret string
	MaxAge int // seconds, used when "keep me logged in" is ticked
	Secure bool
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	env := getEnv("ENV", "development")
	apiBaseURL := strings.TrimSuffix(getEnv("API_BASE_URL", "https://nikofree-arhecnfueegrasf8.canadacentral-01.azurewebsites.net"), "/")

	config := &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "8080"),
			Host:     getEnv("HOST", "localhost"),
			Env:      env,
			Timezone: getEnv("TIMEZONE", "Africa/Nairobi"),
		},
		API: APIConfig{
			BaseURL:       apiBaseURL,
			ImageBaseURL:  strings.TrimSuffix(getEnv("IMAGE_BASE_URL", apiBaseURL), "/"),
			Timeout:       getEnvAsDuration("API_TIMEOUT", 30*time.Second),
			EventsPerPage: getEnvAsInt("EVENTS_PER_PAGE", 200),
			Demo:          getEnvAsBool("DEMO_MODE", false),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", defaultSessionSecret),
			MaxAge: getEnvAsInt("SESSION_MAX_AGE", 86400*30),
			Secure: getEnvAsBool("SESSION_SECURE", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultLogFormat(env)),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// defaultLogFormat is human readable text in development and JSON elsewhere
func defaultLogFormat(env string) string {
	if env == "development" {
		return "text"
	}
	return "json"
}

// Validate checks the values the server cannot run without
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.API.BaseURL)
	}

	if c.API.EventsPerPage <= 0 {
		return errors.New("EVENTS_PER_PAGE must be positive")
	}

	if !c.IsDevelopment() && c.Session.Secret == defaultSessionSecret {
		return errors.New("SESSION_SECRET must be set outside development")
	}

	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Server.Timezone, err)
	}

	return nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// Location returns the configured display timezone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ApplyTimezone makes the configured timezone the one zone-less API
// timestamps are read in. Call it before the first API request.
func (c *Config) ApplyTimezone() *time.Location {
	loc := c.Location()
	models.SetDefaultLocation(loc)
	return loc
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
