// Command server runs the annotation workflow HTTP API.
//
// Configuration is read from config.yaml (or CONFIG_PATH) with environment
// variable overrides. The server shuts down gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/annolab/annolab-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
