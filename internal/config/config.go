package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`

	// Public URL the site is served from, used for canonical and og:url tags
	// and the export sitemap. Left empty, pages carry no absolute URLs.
	BaseURL string `env:"WEBSITE_BASE_URL"`

	// Optional YAML overrides for the embedded catalog and landing copy
	CatalogFile string `env:"CATALOG_FILE"`
	ContentFile string `env:"CONTENT_FILE"`

	// Cache-Control max-age for /static assets
	StaticMaxAge time.Duration `env:"STATIC_MAX_AGE" envDefault:"1h"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadDotEnv loads .env files if present (for local development).
// .env.local overrides .env; real environment variables win over both.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Parse reads the configuration from the environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("invalid WEBSITE_PORT %d", cfg.ServerPort)
	}
	return cfg, nil
}

// NewConfig creates a new Config and logs where it came from
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.Bool("debug", cfg.Debug),
		slog.Bool("catalog_override", cfg.CatalogFile != ""),
	)
	return cfg, nil
}
