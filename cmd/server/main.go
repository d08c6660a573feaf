// Command server runs the ContentSeer HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) or environment variables;
// DATABASE_DSN, API_KEY, and API_SECRET are required.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ndevr/contentseer/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
