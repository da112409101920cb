package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"instagrow/internal/database"
	"instagrow/internal/entity"
)

var repoTracer = otel.Tracer("instagrow/repository/catalog")

// ErrNotFound is returned when a package is missing.
var ErrNotFound = errors.New("package not found")

// listLimit caps catalog listings; the store order is preserved.
const listLimit = 1000

// CollectionName is the Mongo collection backing the package catalog.
const CollectionName = "packages"

// Store abstracts package persistence so services and tests can substitute
// an in-memory implementation.
type Store interface {
	List(ctx context.Context) ([]entity.Package, error)
	FindByID(ctx context.Context, id string) (*entity.Package, error)
	Insert(ctx context.Context, pkg *entity.Package) error
	Replace(ctx context.Context, id string, pkg *entity.Package) (*entity.Package, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, pkgs []entity.Package) error
}

// Repository is the Mongo-backed package store. Documents are addressed by
// the server-generated id field, never by Mongo's _id.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository wires a repository over the packages collection.
func NewRepository(db *database.Mongo) *Repository {
	return &Repository{coll: db.Collection(CollectionName)}
}

// List returns every package in store order, capped at listLimit.
func (r *Repository) List(ctx context.Context) ([]entity.Package, error) {
	ctx, span := repoTracer.Start(ctx, "PackageRepository.List")
	defer span.End()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find failed")
		return nil, err
	}

	var pkgs []entity.Package
	if err := cur.All(ctx, &pkgs); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}
	return pkgs, nil
}

// FindByID fetches one package by its id field.
func (r *Repository) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	ctx, span := repoTracer.Start(ctx, "PackageRepository.FindByID", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	var pkg entity.Package
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find failed")
		return nil, err
	}
	return &pkg, nil
}

// Insert persists a new package document.
func (r *Repository) Insert(ctx context.Context, pkg *entity.Package) error {
	if pkg == nil {
		return errors.New("nil package")
	}
	ctx, span := repoTracer.Start(ctx, "PackageRepository.Insert", trace.WithAttributes(attribute.String("package.id", pkg.ID)))
	defer span.End()

	_, err := r.coll.InsertOne(ctx, pkg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// Replace overwrites the mutable fields of the package matching id and
// returns the post-update document. The id and created_at fields are kept.
func (r *Repository) Replace(ctx context.Context, id string, pkg *entity.Package) (*entity.Package, error) {
	if pkg == nil {
		return nil, errors.New("nil package")
	}
	ctx, span := repoTracer.Start(ctx, "PackageRepository.Replace", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	update := bson.M{"$set": bson.M{
		"name":          pkg.Name,
		"description":   pkg.Description,
		"type":          pkg.Type,
		"quantity":      pkg.Quantity,
		"price":         pkg.Price,
		"delivery_time": pkg.DeliveryTime,
		"popular":       pkg.Popular,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Package
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, err
	}
	return &updated, nil
}

// Delete removes the package matching id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx, span := repoTracer.Start(ctx, "PackageRepository.Delete", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return err
	}
	if res.DeletedCount == 0 {
		span.SetStatus(codes.Error, "not found")
		return ErrNotFound
	}
	return nil
}

// Count reports how many packages exist.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	ctx, span := repoTracer.Start(ctx, "PackageRepository.Count")
	defer span.End()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count failed")
		return 0, err
	}
	return count, nil
}

// InsertMany persists a batch of packages in one call.
func (r *Repository) InsertMany(ctx context.Context, pkgs []entity.Package) error {
	if len(pkgs) == 0 {
		return nil
	}
	ctx, span := repoTracer.Start(ctx, "PackageRepository.InsertMany", trace.WithAttributes(attribute.Int("package.count", len(pkgs))))
	defer span.End()

	docs := make([]any, 0, len(pkgs))
	for i := range pkgs {
		docs = append(docs, pkgs[i])
	}
	_, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}
