package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"instagrow/internal/config"
	"instagrow/internal/entity"
	"instagrow/internal/payment"
	catalogrepo "instagrow/internal/repository/catalog"
	repo "instagrow/internal/repository/order"
	"instagrow/pkg/errorbank"
)

var serviceTracer = otel.Tracer("instagrow/service/order")

// CreateInput carries the validated, normalized fields for placing an order.
type CreateInput struct {
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	InstagramUsername string
	PackageID         string
}

// Stats aggregates the admin dashboard numbers.
type Stats struct {
	TotalOrders     int64
	PendingOrders   int64
	CompletedOrders int64
	TotalRevenue    float64
}

// Service encapsulates business logic around orders.
type Service struct {
	orders       repo.Store
	catalog      catalogrepo.Store
	merchantCity string
	logger       *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Orders  repo.Store
	Catalog catalogrepo.Store
	Config  config.Config
	Logger  *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		orders:       p.Orders,
		catalog:      p.Catalog,
		merchantCity: p.Config.Payment.MerchantCity,
		logger:       p.Logger,
	}
}

// Create places an order against an existing package. The package's name,
// quantity and price are copied onto the order, payment artifacts are derived,
// and the document is persisted only after every field is computed.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Create", trace.WithAttributes(attribute.String("package.id", in.PackageID)))
	defer span.End()

	pkg, err := s.catalog.FindByID(ctx, in.PackageID)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			return nil, errorbank.NotFound("package not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load package", errorbank.WithCause(err))
	}

	pixCode := payment.PixCode(pkg.Price, in.CustomerName, s.merchantCity)
	qrCode, err := payment.QRDataURI(pixCode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "qr encoding error")
		return nil, errorbank.Internal("failed to render payment QR code", errorbank.WithCause(err))
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:                uuid.NewString(),
		CustomerName:      in.CustomerName,
		CustomerEmail:     in.CustomerEmail,
		CustomerPhone:     in.CustomerPhone,
		InstagramUsername: in.InstagramUsername,
		PackageID:         pkg.ID,
		PackageName:       pkg.Name,
		PackageQuantity:   pkg.Quantity,
		PackagePrice:      pkg.Price,
		Status:            entity.OrderStatusPending,
		PixCode:           pixCode,
		PixQRCode:         qrCode,
		PaymentID:         payment.ShortID(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to create order", errorbank.WithCause(err))
	}

	s.logger.Info("order created",
		zap.String("id", order.ID),
		zap.String("package_id", order.PackageID),
		zap.String("instagram_username", order.InstagramUsername),
	)
	return order, nil
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.List")
	defer span.End()

	orders, err := s.orders.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}
	return orders, nil
}

// Get retrieves an order by id.
func (s *Service) Get(ctx context.Context, id string) (*entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Get", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}
	return order, nil
}

// UpdateStatus moves an order to the given status and refreshes updated_at.
// Transitions are unconstrained; the boundary has already checked membership.
func (s *Service) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.UpdateStatus", trace.WithAttributes(
		attribute.String("order.id", id),
		attribute.String("order.status", status.String()),
	))
	defer span.End()

	order, err := s.orders.UpdateStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to update order status", errorbank.WithCause(err))
	}

	s.logger.Info("order status updated",
		zap.String("id", id),
		zap.String("status", status.String()),
	)
	return order, nil
}

// Stats computes the dashboard aggregates fresh on every call.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Stats")
	defer span.End()

	total, err := s.orders.CountAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to count orders", errorbank.WithCause(err))
	}

	pending, err := s.orders.CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to count pending orders", errorbank.WithCause(err))
	}

	completed, err := s.orders.CountByStatus(ctx, entity.OrderStatusCompleted)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to count completed orders", errorbank.WithCause(err))
	}

	revenue, err := s.orders.SumPriceByStatuses(ctx, entity.RevenueStatuses())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to sum revenue", errorbank.WithCause(err))
	}

	return &Stats{
		TotalOrders:     total,
		PendingOrders:   pending,
		CompletedOrders: completed,
		TotalRevenue:    revenue,
	}, nil
}
