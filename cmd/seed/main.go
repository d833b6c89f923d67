package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/auth"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/store"
)

// seed replaces the catalog collection with the sample documents and
// creates the sample account.
func main() {
	logger := config.GetLogger()
	if err := run(); err != nil {
		logger.Fatal().Err(err).Msg("Seeding failed")
	}
	logger.Info().Msg("Database seeded successfully")
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Connect(ctx, config.GetConfig())
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(closeCtx)
	}()

	return store.Seed(ctx, db, auth.HashPassword)
}
