package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"instagrow/internal/config"
)

const connectTimeout = 5 * time.Second

// Mongo bundles the client with the handle of the configured database.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Collection returns a handle scoped to the configured database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

// Module registers the Mongo connection with Fx.
var Module = fx.Provide(New)

// New establishes the Mongo client and verifies connectivity on start.
func New(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	conn := &Mongo{
		Client: client,
		DB:     client.Database(cfg.Mongo.Database),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
			defer cancel()
			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return fmt.Errorf("ping mongo: %w", err)
			}
			logger.Info("database connected", zap.String("database", cfg.Mongo.Database))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := client.Disconnect(ctx); err != nil {
				return fmt.Errorf("disconnect mongo: %w", err)
			}
			return nil
		},
	})

	return conn, nil
}
