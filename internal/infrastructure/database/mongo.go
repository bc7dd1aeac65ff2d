package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bibliotheque-backend/internal/config"
	"bibliotheque-backend/pkg/logger"
)

// MongoDB wraps the driver client and the application database handle.
// The client maintains its own connection pool; the service never holds
// catalog state in memory between requests.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *config.MongoConfig
}

// NewMongoDB connects to the document store with retry and returns the
// wrapper once a ping succeeds.
func NewMongoDB(ctx context.Context, cfg *config.MongoConfig) (*MongoDB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := connectWithRetry(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database),
		Config:   cfg,
	}, nil
}

// connectWithRetry retries the initial connection with exponential backoff
// so a cold-started database container does not kill the service.
func connectWithRetry(ctx context.Context, cfg *config.MongoConfig, opts *options.ClientOptions) (*mongo.Client, error) {
	var lastErr error
	delay := cfg.RetryDelay

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()
			if err == nil {
				logger.Info("Connected to MongoDB", map[string]interface{}{
					"database": cfg.Database,
					"attempt":  attempt,
				})
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		lastErr = err
		logger.Error(fmt.Sprintf("MongoDB connection attempt %d/%d failed", attempt, cfg.MaxRetries), err)

		if attempt < cfg.MaxRetries {
			select {
			case <-time.After(delay):
				delay *= 2
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", cfg.MaxRetries, lastErr)
}

// Collection returns a handle on a collection of the application database.
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// HealthCheck pings the primary.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
