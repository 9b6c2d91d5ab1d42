package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sandevgo/pdfchat/internal/config"
	"github.com/sandevgo/pdfchat/internal/core"
)

// Connect opens a client against the Atlas deployment and verifies it with
// a ping. An unreachable store is fatal at startup.
func Connect(ctx context.Context, cfg *config.AtlasConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(core.AppName)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// Disconnector adapts client shutdown to the cleanup service signature.
func Disconnector(client *mongo.Client) func() error {
	return func() error {
		return client.Disconnect(context.Background())
	}
}
