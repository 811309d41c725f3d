package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	DashboardTitle string `envconfig:"DASHBOARD_TITLE" default:"Systemic Altruism"`

	RateLimitPerMinute       int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60"`
	ExportRateLimitPerMinute int `envconfig:"EXPORT_RATE_LIMIT_PER_MINUTE" default:"10"`

	// GotenbergURL enables the PDF export when set.
	GotenbergURL string `envconfig:"GOTENBERG_URL"`
}

// LoadConfig reads configuration from environment variables, after loading
// any of the given dotenv files that exist. Variables already set in the
// environment win over dotenv values.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute <= 0 {
		return nil, errors.New("rate limit must be positive")
	}
	if cfg.ExportRateLimitPerMinute <= 0 {
		return nil, errors.New("export rate limit must be positive")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// PDFEnabled reports whether a Gotenberg endpoint is configured.
func (c *Config) PDFEnabled() bool {
	return c != nil && c.GotenbergURL != ""
}
