package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrMissingURI = errors.New("mongodb uri is not set; export MONGODB_URI or set mongo.uri in the config file")

// InitDB connects to uri, pings the server and returns the named database.
// Callers own the client and disconnect it through db.Client().
func InitDB(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	if uri == "" {
		return nil, ErrMissingURI
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error while connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error while pinging mongodb: %w", err)
	}

	return client.Database(dbName), nil
}
