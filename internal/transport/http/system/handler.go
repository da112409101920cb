package system

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"instagrow/internal/dto"
	"instagrow/internal/presentation/http/response"
	"instagrow/internal/seeder"
	"instagrow/pkg/errorbank"
)

var httpTracer = otel.Tracer("instagrow/transport/http/system")

const apiVersion = "1.0"

// Handler exposes the API root and the one-time data initializer.
type Handler struct {
	seeder *seeder.Seeder
}

// NewHandler constructs a system Handler.
func NewHandler(s *seeder.Seeder) *Handler {
	return &Handler{seeder: s}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api")
	g.GET("", h.info)
	g.POST("/init-data", h.initData)
}

func (h *Handler) info(c echo.Context) error {
	return response.New(c).WithData(dto.InfoResponse{
		Message: "InstaGrow API",
		Version: apiVersion,
	}).Build()
}

func (h *Handler) initData(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "system.initData")
	defer span.End()

	inserted, err := h.seeder.Run(ctx)
	if err != nil {
		return b.WithError(errorbank.Internal("failed to initialize data", errorbank.WithCause(err))).Build()
	}

	message := "data already initialized"
	if inserted > 0 {
		message = fmt.Sprintf("initialized %d default packages", inserted)
	}
	return b.WithData(dto.MessageResponse{Message: message}).Build()
}
