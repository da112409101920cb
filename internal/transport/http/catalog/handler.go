package catalog

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"instagrow/internal/dto"
	"instagrow/internal/entity"
	"instagrow/internal/presentation/http/response"
	service "instagrow/internal/service/catalog"
	"instagrow/pkg/errorbank"
)

var httpTracer = otel.Tracer("instagrow/transport/http/catalog")

// Handler exposes the package catalog endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a catalog Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/packages")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "packages.list")
	defer span.End()

	pkgs, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(toDTOs(pkgs)).Build()
}

func (h *Handler) get(c echo.Context) error {
	b := response.New(c)
	id := c.Param("id")

	ctx, span := httpTracer.Start(c.Request().Context(), "packages.get", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	pkg, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(toDTO(pkg)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreatePackageRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.Unprocessable("invalid request body", errorbank.WithCause(err))).Build()
	}
	if err := c.Validate(&payload); err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "packages.create", trace.WithAttributes(attribute.String("package.type", payload.Type)))
	defer span.End()

	created, err := h.svc.Create(ctx, toEntity(payload))
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(toDTO(created)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)
	id := c.Param("id")

	var payload dto.CreatePackageRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.Unprocessable("invalid request body", errorbank.WithCause(err))).Build()
	}
	if err := c.Validate(&payload); err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "packages.update", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	updated, err := h.svc.Update(ctx, id, toEntity(payload))
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(toDTO(updated)).Build()
}

func (h *Handler) remove(c echo.Context) error {
	b := response.New(c)
	id := c.Param("id")

	ctx, span := httpTracer.Start(c.Request().Context(), "packages.delete", trace.WithAttributes(attribute.String("package.id", id)))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.MessageResponse{Message: "package removed successfully"}).Build()
}

func toEntity(payload dto.CreatePackageRequest) *entity.Package {
	return &entity.Package{
		Name:         payload.Name,
		Description:  payload.Description,
		Type:         entity.PackageType(payload.Type),
		Quantity:     payload.Quantity,
		Price:        *payload.Price,
		DeliveryTime: payload.DeliveryTime,
		Popular:      payload.Popular,
	}
}

func toDTO(pkg *entity.Package) dto.PackageResponse {
	return dto.PackageResponse{
		ID:           pkg.ID,
		Name:         pkg.Name,
		Description:  pkg.Description,
		Type:         pkg.Type.String(),
		Quantity:     pkg.Quantity,
		Price:        pkg.Price,
		DeliveryTime: pkg.DeliveryTime,
		Popular:      pkg.Popular,
		CreatedAt:    pkg.CreatedAt,
	}
}

func toDTOs(pkgs []entity.Package) []dto.PackageResponse {
	out := make([]dto.PackageResponse, 0, len(pkgs))
	for i := range pkgs {
		out = append(out, toDTO(&pkgs[i]))
	}
	return out
}
