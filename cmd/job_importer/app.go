package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fractionalquest/fractional-quest/internal/config"
	"github.com/fractionalquest/fractional-quest/internal/db"
	"github.com/fractionalquest/fractional-quest/internal/observability"
)

// app holds what every database-backed command needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *db.DB
}

// newApp loads configuration from the environment, builds the logger and opens
// the connection pool.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.Options{
		MaxConns:       cfg.DB.MaxConns,
		ConnectTimeout: cfg.DB.ConnectTimeout,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, db: database}, nil
}

func (a *app) Close() {
	a.db.Close()
	_ = a.logger.Sync()
}

// parseEnum matches value case-insensitively against allowed. An empty value
// yields the zero value.
func parseEnum[T ~string](flag, value string, allowed []T) (T, error) {
	var zero T
	value = strings.TrimSpace(value)
	if value == "" {
		return zero, nil
	}
	for _, candidate := range allowed {
		if strings.EqualFold(string(candidate), value) {
			return candidate, nil
		}
	}

	names := make([]string, len(allowed))
	for i, candidate := range allowed {
		names[i] = string(candidate)
	}
	return zero, fmt.Errorf("invalid --%s %q: must be one of %s", flag, value, strings.Join(names, ", "))
}

func newPrinter(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.OutOrStdout())
}
