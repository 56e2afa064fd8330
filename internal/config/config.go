package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Content source selectors.
const (
	SourceStatic   = "static"
	SourceFiles    = "files"
	SourcePostgres = "postgres"
)

// DefaultBaseURL is the canonical site origin used when BASE_URL is unset.
const DefaultBaseURL = "https://workoutgenerator.com"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Site identity (base origin, display name)
	Site SiteConfig

	// Content store configuration
	Content ContentConfig

	// Database configuration (only used when Content.Source == "postgres")
	Database DatabaseConfig

	// ChatKit session proxy configuration
	ChatKit ChatKitConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// SiteConfig holds the canonical origin and display identity of the site
type SiteConfig struct {
	BaseURL  string
	SiteName string
}

// ContentConfig selects where blog posts come from
type ContentConfig struct {
	Source string // "static", "files" or "postgres"
	Dir    string // markdown directory for the "files" source
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// ChatKitConfig holds the server-held credential and upstream endpoint for the
// chat session proxy. APIKey may be empty; the proxy endpoint then answers
// with a configuration error instead of calling upstream.
type ChatKitConfig struct {
	APIKey     string
	SessionURL string
	Timeout    time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Site: SiteConfig{
			BaseURL:  getEnv("BASE_URL", DefaultBaseURL),
			SiteName: getEnv("SITE_NAME", "Workout Generator"),
		},
		Content: ContentConfig{
			Source: getEnv("CONTENT_SOURCE", SourceStatic),
			Dir:    getEnv("CONTENT_DIR", "./content"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "workout_generator"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		ChatKit: ChatKitConfig{
			APIKey:     os.Getenv("OPENAI_API_KEY"),
			SessionURL: getEnv("CHATKIT_SESSION_URL", "https://api.openai.com/v1/chatkit/sessions"),
			Timeout:    getDurationEnv("CHATKIT_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Content.Source {
	case SourceStatic, SourceFiles, SourcePostgres:
	default:
		return fmt.Errorf("CONTENT_SOURCE must be one of: static, files, postgres (got %q)", c.Content.Source)
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("BASE_URL must not be empty")
	}
	if c.Content.Source == SourcePostgres {
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres content source")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required for the postgres content source")
		}
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
