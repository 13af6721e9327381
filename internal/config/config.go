package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// RetryConfig bounds the random code allocation loop
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS" validate:"min=1"`
}

// Config is built once at start-up and never mutated afterwards
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL" validate:"required"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	DatabaseMaxConn int32          `env:"DATABASE_MAX_CONNS" validate:"gte=0"`
	LogLevel        string         `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	JWTSecret string        `env:"JWT_SECRET" validate:"required,min=16"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" validate:"gt=0"`

	Retry      RetryConfig
	CodeLength int `env:"CODE_LENGTH" validate:"min=1,max=32"`

	DefaultURLLimit int    `env:"DEFAULT_URL_LIMIT" validate:"gte=0"`
	BcryptCost      int    `env:"BCRYPT_COST" validate:"min=4,max=31"`
	AdminUsername   string `env:"ADMIN_USERNAME"`
	AdminPassword   string `env:"ADMIN_PASSWORD" validate:"required_with=AdminUsername"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// NewDefaultConfig returns the configuration used when nothing is overridden.
// JWTSecret is left empty and must be supplied.
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         URLPrefix("http://localhost:8080"),
		DatabaseMaxConn: 10,
		LogLevel:        "info",
		TokenTTL:        30 * time.Minute,
		Retry:           RetryConfig{MaxAttempts: 50},
		CodeLength:      8,
		DefaultURLLimit: 20,
		BcryptCost:      10,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads .env (if present), command-line flags and the environment.
// Precedence from lowest: defaults, .env, flags, environment.
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error
	dotenv, err := godotenv.Read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	return load(os.Args[1:], dotenv, nil)
}

// load does the actual parsing. dotenv may be nil; environ == nil means
// the process environment.
func load(args []string, dotenv, environ map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	if len(dotenv) > 0 {
		if err := env.ParseWithOptions(cfg, env.Options{Environment: dotenv}); err != nil {
			return nil, fmt.Errorf("failed to parse .env: %w", err)
		}
	}

	flags := flag.NewFlagSet("shortener", flag.ContinueOnError)
	flags.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flags.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	flags.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to the JSON storage file")
	flags.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL connection string")
	flags.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "secret used to sign access tokens")
	flags.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
