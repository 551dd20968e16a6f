// Command cleanup-tokens sweeps expired and revoked refresh tokens. Meant to
// run on a schedule (cron or a k8s CronJob); the HTTP server never deletes
// token rows itself.
//
// Requires DATABASE_DSN.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	tokenrepo "github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres/token"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall run timeout")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	count, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("cleanup tokens: %v", err)
	}

	log.Printf("deleted %d expired/revoked refresh tokens", count)
}
