// Command server runs the admin panel HTTP API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
