package store

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Shuvikm/sonyliv-clone/internal/config"
)

// Collection names
const (
	ContentsCollection = "contents"
	UsersCollection    = "users"
)

// DB is a connected catalog database with its repositories
type DB struct {
	client   *mongo.Client
	database *mongo.Database

	Contents *ContentRepository
	Users    *UserRepository
}

// Connect dials MongoDB, retrying the initial connect and ping with backoff,
// and ensures the collection indexes.
func Connect(ctx context.Context, cfg *config.Config) (*DB, error) {
	logger := config.GetLogger()
	timeout := config.ParseDuration("mongo.connect_timeout", cfg.Mongo.ConnectTimeout, 5*time.Second)
	attempts := cfg.Mongo.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	var client *mongo.Client
	err := retry.Do(
		func() error {
			c, err := mongo.Connect(ctx, opts)
			if err != nil {
				return err
			}
			pingCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			if err := c.Ping(pingCtx, readpref.Primary()); err != nil {
				_ = c.Disconnect(context.Background())
				return err
			}
			client = c
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn().Err(err).Uint("attempt", n+1).Uint("attempts", attempts).Msg("MongoDB connect failed, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	db := newDB(client, client.Database(cfg.Mongo.Database))
	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to ensure MongoDB indexes")
	}

	logger.Info().Str("database", cfg.Mongo.Database).Msg("Connected to MongoDB")
	return db, nil
}

func newDB(client *mongo.Client, database *mongo.Database) *DB {
	return &DB{
		client:   client,
		database: database,
		Contents: NewContentRepository(database.Collection(ContentsCollection)),
		Users:    NewUserRepository(database.Collection(UsersCollection)),
	}
}

// EnsureIndexes creates the content and user indexes if missing.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	if err := db.Contents.EnsureIndexes(ctx); err != nil {
		return err
	}
	return db.Users.EnsureIndexes(ctx)
}

// Ping checks that the server is still reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
