package catalog

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

	"instagrow/internal/entity"
	repo "instagrow/internal/repository/catalog"
	"instagrow/pkg/errorbank"
)

var serviceTracer = otel.Tracer("instagrow/service/catalog")

// Service encapsulates business logic around the package catalog.
type Service struct {
	store  repo.Store
	logger *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Store  repo.Store
	Logger *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		store:  p.Store,
		logger: p.Logger,
	}
}

// List returns every catalog package.
func (s *Service) List(ctx context.Context) ([]entity.Package, error) {
	ctx, span := serviceTracer.Start(ctx, "PackageService.List")
	defer span.End()

	pkgs, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list packages", errorbank.WithCause(err))
	}
	return pkgs, nil
}

// Get retrieves a package by id.
func (s *Service) Get(ctx context.Context, id string) (*entity.Package, error) {
	ctx, span := serviceTracer.Start(ctx, "PackageService.Get", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	pkg, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("package not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load package", errorbank.WithCause(err))
	}
	return pkg, nil
}

// Create assigns the server-generated fields and persists a new package. The
// incoming entity carries only client-supplied fields.
func (s *Service) Create(ctx context.Context, pkg *entity.Package) (*entity.Package, error) {
	if pkg == nil {
		return nil, errorbank.BadRequest("package payload is required")
	}
	ctx, span := serviceTracer.Start(ctx, "PackageService.Create", trace.WithAttributes(attribute.String("package.type", pkg.Type.String())))
	defer span.End()

	pkg.ID = uuid.NewString()
	pkg.CreatedAt = time.Now().UTC()

	if err := s.store.Insert(ctx, pkg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to create package", errorbank.WithCause(err))
	}

	s.logger.Info("package created",
		zap.String("id", pkg.ID),
		zap.String("type", pkg.Type.String()),
		zap.Int("quantity", pkg.Quantity),
	)
	return pkg, nil
}

// Update fully replaces the mutable fields of the package matching id.
func (s *Service) Update(ctx context.Context, id string, pkg *entity.Package) (*entity.Package, error) {
	if pkg == nil {
		return nil, errorbank.BadRequest("package payload is required")
	}
	ctx, span := serviceTracer.Start(ctx, "PackageService.Update", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	updated, err := s.store.Replace(ctx, id, pkg)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("package not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to update package", errorbank.WithCause(err))
	}

	s.logger.Info("package updated", zap.String("id", id))
	return updated, nil
}

// Delete removes the package matching id.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := serviceTracer.Start(ctx, "PackageService.Delete", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("package not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete package", errorbank.WithCause(err))
	}

	s.logger.Info("package deleted", zap.String("id", id))
	return nil
}
