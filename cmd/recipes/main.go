package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/alchemorsel-console/internal/cli"
)

func main() {
	// Stop the session between prompts on an interrupt or terminate signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.Execute(ctx)
	stop()

	if err != nil {
		slog.Error("session failed", "error", err)
		os.Exit(1)
	}
}
