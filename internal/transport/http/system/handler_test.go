package system

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"instagrow/internal/seeder"
	"instagrow/internal/testutil"
)

func newTestServer(store *testutil.CatalogStore) *echo.Echo {
	e := echo.New()
	Register(e, NewHandler(seeder.New(store, zap.NewNop())))
	return e
}

func TestInfo(t *testing.T) {
	e := newTestServer(&testutil.CatalogStore{})

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"InstaGrow API","version":"1.0"}`, rec.Body.String())
}

func TestInitDataTwice(t *testing.T) {
	store := &testutil.CatalogStore{}
	e := newTestServer(store)

	req := httptest.NewRequest(http.MethodPost, "/api/init-data", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"initialized 5 default packages"}`, rec.Body.String())
	assert.Len(t, store.Packages, 5)

	req = httptest.NewRequest(http.MethodPost, "/api/init-data", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"data already initialized"}`, rec.Body.String())
	assert.Len(t, store.Packages, 5)
}
