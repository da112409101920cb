package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"instagrow/internal/config"
	"instagrow/internal/entity"
	service "instagrow/internal/service/order"
	"instagrow/internal/testutil"
)

func newTestServer(orders *testutil.OrderStore) *echo.Echo {
	e := echo.New()
	svc := service.NewService(service.Params{
		Orders:  orders,
		Catalog: &testutil.CatalogStore{},
		Config:  config.Config{},
		Logger:  zap.NewNop(),
	})
	Register(e, NewHandler(svc))
	return e
}

func getStats(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStatsAggregates(t *testing.T) {
	orders := &testutil.OrderStore{Orders: []entity.Order{
		{ID: "a", Status: entity.OrderStatusPaid, PackagePrice: 10},
		{ID: "b", Status: entity.OrderStatusPending, PackagePrice: 20},
		{ID: "c", Status: entity.OrderStatusCompleted, PackagePrice: 30},
	}}
	e := newTestServer(orders)

	rec := getStats(e)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{
		"total_orders": 3,
		"pending_orders": 1,
		"completed_orders": 1,
		"total_revenue": 40
	}`, rec.Body.String())
}

func TestStatsEmpty(t *testing.T) {
	e := newTestServer(&testutil.OrderStore{})

	rec := getStats(e)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{
		"total_orders": 0,
		"pending_orders": 0,
		"completed_orders": 0,
		"total_revenue": 0
	}`, rec.Body.String())
}

func TestStatsCountsCancelledInTotalOnly(t *testing.T) {
	orders := &testutil.OrderStore{Orders: []entity.Order{
		{ID: "a", Status: entity.OrderStatusCancelled, PackagePrice: 50},
	}}
	e := newTestServer(orders)

	rec := getStats(e)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{
		"total_orders": 1,
		"pending_orders": 0,
		"completed_orders": 0,
		"total_revenue": 0
	}`, rec.Body.String())
}
