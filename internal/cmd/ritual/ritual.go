// Package ritual parses ritual server flags and launches the service.
package ritual

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	entrypoint "github.com/withmystar/ritual/internal/platform/cmd"
	"github.com/withmystar/ritual/internal/platform/logging"
	server "github.com/withmystar/ritual/internal/services/ritual/app"
)

// DefaultAddr is the loopback endpoint the ritual server binds by default.
const DefaultAddr = "[::1]:50051"

// Config holds ritual command configuration.
type Config struct {
	Addr    string `env:"RITUAL_ADDR" envDefault:"[::1]:50051"`
	Logging logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The ritual gRPC server listen address")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format: text or json")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the process logger from cfg, writing to w.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	logger, err := logging.New(cfg.Logging, w)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return logger, nil
}

// Run starts the ritual gRPC service and blocks until ctx ends.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	logger = logging.OrDiscard(logger)
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceRitual, options, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Addr, logger)
	})
}
