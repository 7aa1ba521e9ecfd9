package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration loaded from environment
// variables. Every field has a sensible default; only NOTIFY_API_KEY is
// required.
type Config struct {
	// Server
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	// Notification provider
	NotifyAPIKey  string        `envconfig:"NOTIFY_API_KEY" required:"true"`
	NotifyBaseURL string        `envconfig:"NOTIFY_BASE_URL" default:"https://api.notifications.service.gov.uk/v2"`
	NotifyTimeout time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`

	// Fallback template used when the (form type, region, language)
	// lookup misses. Empty means a miss is a hard validation failure.
	FallbackTemplateID string `envconfig:"NOTIFY_TEST_TEMPLATE_ID"`

	// Rate limiting: maximum inbound requests per second
	RateLimit int `envconfig:"RATE_LIMIT_PER_SECOND" default:"100"`
}

// Load reads an optional .env file, then the process environment.
// godotenv silently succeeds when no .env file exists, so production
// deployments that rely purely on real environment variables work
// unchanged.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}
