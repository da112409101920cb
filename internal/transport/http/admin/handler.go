package admin

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"instagrow/internal/dto"
	"instagrow/internal/presentation/http/response"
	service "instagrow/internal/service/order"
)

var httpTracer = otel.Tracer("instagrow/transport/http/admin")

// Handler exposes the admin dashboard endpoints over HTTP.
type Handler struct {
	orders *service.Service
}

// NewHandler constructs an admin Handler.
func NewHandler(orders *service.Service) *Handler {
	return &Handler{orders: orders}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/admin")
	g.GET("/stats", h.stats)
}

func (h *Handler) stats(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "admin.stats")
	defer span.End()

	stats, err := h.orders.Stats(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.StatsResponse{
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalRevenue:    stats.TotalRevenue,
	}).Build()
}
