// Command cardcheck validates payment card numbers from the command line,
// scans card images and serves the same operations over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(version, os.Stdout).Run(ctx, os.Args); err != nil {
		slog.Error("cardcheck failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
