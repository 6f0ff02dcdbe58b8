package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           int           `env:"PORT" envDefault:"3318"`
	BackendURL     string        `env:"BACKEND_URL"`
	RequestTimeout time.Duration `env:"PLEDGE_TIMEOUT" envDefault:"10s"`
	AllowedOrigin  string        `env:"ALLOWED_ORIGIN" envDefault:"*"`
}

var ErrBackendURLRequired = errors.New("backend URL required (use -b or BACKEND_URL env)")

// FromEnv loads .env files (when present) and decodes the environment
func FromEnv(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// godotenv never overrides variables that are already set
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

// ParseFlags reads the environment, lets flags override it and validates
// the result
func ParseFlags(args []string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("fee-referendum", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "Pledge service base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Pledge request timeout")
	fs.StringVar(&cfg.AllowedOrigin, "origin", cfg.AllowedOrigin, "CORS allowed origin")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings needed before the first pledge is sent
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.BackendURL == "" {
		return ErrBackendURLRequired
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid backend URL %q: must be an absolute http(s) URL", c.BackendURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("pledge timeout must be positive")
	}
	return nil
}
