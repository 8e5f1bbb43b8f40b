package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "datalab-api"
)

// Config selects the MongoDB deployment that holds the identity registry.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// readPreference is shared by identity reads, the startup ping and the
// readiness ping: the primary is preferred, a secondary is good enough.
var readPreference = readpref.PrimaryPreferred()

// Connect opens a client, pings the deployment with the same read preference
// identity lookups use and returns the client together with the registry
// database. A deployment whose primary is down but with a reachable secondary
// still connects.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(cfg.URI, timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readPreference); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}

func clientOptions(uri string, timeout time.Duration) *options.ClientOptions {
	return options.Client().
		ApplyURI(uri).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout).
		SetReadPreference(readPreference)
}

// Ping reports whether the deployment is reachable. It backs the readiness
// check.
func Ping(client *mongo.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx, readPreference)
	}
}
