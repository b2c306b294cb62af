// Package config loads process settings from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"bookmark_backend/internal/platform/db"
)

const (
	EnvProduction = "production"

	devJWTSecret = "dev-secret-key"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required in production")

type Config struct {
	AppEnv        string        `env:"APP_ENV" envDefault:"development"`
	ServerAddress string        `env:"SERVER_ADDRESS" envDefault:":3001"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"30s"`

	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"admin123"`

	DB db.Config

	// UsingDevSecret is set when JWTSecret fell back to the development key.
	UsingDevSecret bool `env:"-"`
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// NewConfig builds the configuration. args are the command-line arguments
// without the program name.
func NewConfig(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("bookmark", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "addr", cfg.ServerAddress, "HTTP listen address")
	fs.StringVar(&cfg.DB.Driver, "db-driver", cfg.DB.Driver, "database driver: postgres or sqlite")
	fs.StringVar(&cfg.DB.DSN, "dsn", cfg.DB.DSN, "database connection string")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "secret used to sign tokens")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.DB.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingJWTSecret
		}
		cfg.JWTSecret = devJWTSecret
		cfg.UsingDevSecret = true
	}

	for i, o := range cfg.CORSAllowedOrigins {
		cfg.CORSAllowedOrigins[i] = strings.TrimSpace(o)
	}

	return cfg, nil
}
