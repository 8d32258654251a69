// Package config provides configuration loading and validation for the importer CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to every component that needs it.
// Nothing below cmd/ reads the process environment directly.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL" validate:"required"`

	Log    LogConfig
	DB     DBConfig
	Import ImportConfig
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
}

// DBConfig tunes the connection pool.
type DBConfig struct {
	MaxConns       int32         `env:"DB_MAX_CONNS" envDefault:"4" validate:"gte=1,lte=100"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// ImportConfig controls a single import run.
type ImportConfig struct {
	// Source prefixes every external id, e.g. "linkedin-4012345678".
	Source    string `env:"IMPORT_SOURCE" envDefault:"linkedin" validate:"required,alphanum,lowercase"`
	MaxErrors int    `env:"IMPORT_MAX_ERRORS" envDefault:"100" validate:"gte=1"`
}

// ExternalIDPrefix is the prefix shared by every external id this source writes.
func (c ImportConfig) ExternalIDPrefix() string {
	return c.Source + "-"
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env") into the
// process environment. Variables that are already set are left alone and a missing
// file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads the configuration from the process environment.
// A .env file, if any, must already have been loaded by the caller.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFromMap reads the configuration from environ instead of the process environment.
func LoadFromMap(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("env"), ",")
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("config error: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "gte", "gt", "lte":
		return fmt.Sprintf("'%s' must be %s %s", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("'%s' failed %s validation", fe.Field(), fe.Tag())
	}
}
