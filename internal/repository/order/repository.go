package order

import (
	"context"
	"errors"
	"time"

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

var repoTracer = otel.Tracer("instagrow/repository/order")

// ErrNotFound is returned when an order is missing.
var ErrNotFound = errors.New("order not found")

// listLimit caps order listings.
const listLimit = 1000

// CollectionName is the Mongo collection backing orders.
const CollectionName = "orders"

// Store abstracts order persistence so services and tests can substitute an
// in-memory implementation.
type Store interface {
	Insert(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) (*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
	SumPriceByStatuses(ctx context.Context, statuses []entity.OrderStatus) (float64, error)
}

// Repository is the Mongo-backed order store, addressed by the
// server-generated id field.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository wires a repository over the orders collection.
func NewRepository(db *database.Mongo) *Repository {
	return &Repository{coll: db.Collection(CollectionName)}
}

// Insert persists a new order document.
func (r *Repository) Insert(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Insert", trace.WithAttributes(attribute.String("order.id", order.ID)))
	defer span.End()

	_, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// FindByID fetches one order by its id field.
func (r *Repository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.FindByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	var order entity.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find failed")
		return nil, err
	}
	return &order, nil
}

// List returns orders newest first, capped at listLimit.
func (r *Repository) List(ctx context.Context) ([]entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.List")
	defer span.End()

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(listLimit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find failed")
		return nil, err
	}

	var orders []entity.Order
	if err := cur.All(ctx, &orders); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets the status and updated_at of the order matching id and
// returns the post-update document. Any status may replace any other.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) (*entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.UpdateStatus", trace.WithAttributes(
		attribute.String("order.id", id),
		attribute.String("order.status", status.String()),
	))
	defer span.End()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": updatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order entity.Order
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, err
	}
	return &order, nil
}

// CountAll reports how many orders exist.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, "OrderRepository.CountAll", bson.M{})
}

// CountByStatus reports how many orders carry the given status.
func (r *Repository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	return r.count(ctx, "OrderRepository.CountByStatus", bson.M{"status": status})
}

func (r *Repository) count(ctx context.Context, spanName string, filter bson.M) (int64, error) {
	ctx, span := repoTracer.Start(ctx, spanName)
	defer span.End()

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count failed")
		return 0, err
	}
	return count, nil
}

// SumPriceByStatuses aggregates the package_price total over orders whose
// status is in the given set. Returns 0 when nothing matches.
func (r *Repository) SumPriceByStatuses(ctx context.Context, statuses []entity.OrderStatus) (float64, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.SumPriceByStatuses")
	defer span.End()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$in": statuses}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$package_price"}}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregate failed")
		return 0, err
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
