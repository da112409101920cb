package migration

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"instagrow/internal/database"
	catalogrepo "instagrow/internal/repository/catalog"
	orderrepo "instagrow/internal/repository/order"
)

// Module exposes the migrator to Fx.
var Module = fx.Provide(New)

// Migrator bootstraps collection indexes.
type Migrator struct {
	db     *database.Mongo
	logger *zap.Logger
}

// New constructs an index-based migrator.
func New(db *database.Mongo, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// Up ensures all collection indexes exist. Safe to run repeatedly.
func (m *Migrator) Up(ctx context.Context) error {
	for _, set := range indexSets() {
		names, err := m.db.Collection(set.collection).Indexes().CreateMany(ctx, set.indexes)
		if err != nil {
			return err
		}

		m.logger.Info("indexes ensured",
			zap.String("collection", set.collection),
			zap.Strings("indexes", names),
		)
	}

	return nil
}

// Down drops all managed indexes, keeping the default _id index.
func (m *Migrator) Down(ctx context.Context) error {
	for _, set := range indexSets() {
		if _, err := m.db.Collection(set.collection).Indexes().DropAll(ctx); err != nil {
			return err
		}

		m.logger.Info("indexes dropped", zap.String("collection", set.collection))
	}

	return nil
}

type indexSet struct {
	collection string
	indexes    []mongo.IndexModel
}

func indexSets() []indexSet {
	return []indexSet{
		{
			collection: catalogrepo.CollectionName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "id", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("id_unique"),
				},
			},
		},
		{
			collection: orderrepo.CollectionName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "id", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("id_unique"),
				},
				{
					Keys:    bson.D{{Key: "created_at", Value: -1}},
					Options: options.Index().SetName("created_at_desc"),
				},
				{
					Keys:    bson.D{{Key: "status", Value: 1}},
					Options: options.Index().SetName("status_asc"),
				},
			},
		},
	}
}
