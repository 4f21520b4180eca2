// Package main starts the ritual gRPC service process lifecycle.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	ritualcmd "github.com/withmystar/ritual/internal/cmd/ritual"
	"github.com/withmystar/ritual/internal/platform/config"
)

func main() {
	cfg, err := ritualcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger, err := ritualcmd.NewLogger(cfg, os.Stderr)
	if err != nil {
		config.Exitf("%v", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ritualcmd.Run(ctx, cfg, logger); err != nil {
		stop()
		config.Exitf("failed to serve: %v", err)
	}
}
