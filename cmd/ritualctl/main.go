// Package main provides a CLI for calling a running ritual server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	ritualctlcmd "github.com/withmystar/ritual/internal/cmd/ritualctl"
	"github.com/withmystar/ritual/internal/platform/config"
)

func main() {
	cfg, err := ritualctlcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ritualctlcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
}
