// Package main runs a championship season and prints the results.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	championshipcmd "github.com/louisbranch/grandprix/internal/cmd/championship"
	entrypoint "github.com/louisbranch/grandprix/internal/platform/cmd"
	"github.com/louisbranch/grandprix/internal/platform/config"
	apperrors "github.com/louisbranch/grandprix/internal/platform/errors"
)

func main() {
	cfg, err := championshipcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceChampionship, func(ctx context.Context) error {
		return championshipcmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		config.Exitf("Error: %s", apperrors.Localize(err, cfg.Locale))
	}
}
