package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"instagrow/internal/dto"
	"instagrow/internal/entity"
	service "instagrow/internal/service/catalog"
	"instagrow/internal/testutil"
	"instagrow/internal/validation"
)

func newTestServer(store *testutil.CatalogStore) *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	svc := service.NewService(service.Params{Store: store, Logger: zap.NewNop()})
	Register(e, NewHandler(svc))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const createBody = `{
	"name": "100 Seguidores",
	"description": "Ideal para começar! 100 seguidores brasileiros de qualidade.",
	"type": "followers",
	"quantity": 100,
	"price": 9.90,
	"delivery_time": "1-2 horas"
}`

func TestListEmptyCatalogReturnsArray(t *testing.T) {
	e := newTestServer(&testutil.CatalogStore{})

	rec := doJSON(e, http.MethodGet, "/api/packages", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	e := newTestServer(&testutil.CatalogStore{})

	rec := doJSON(e, http.MethodPost, "/api/packages", createBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created dto.PackageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "followers", created.Type)
	assert.False(t, created.Popular)

	rec = doJSON(e, http.MethodGet, "/api/packages/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched dto.PackageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateRejectsIncompletePayload(t *testing.T) {
	e := newTestServer(&testutil.CatalogStore{})

	rec := doJSON(e, http.MethodPost, "/api/packages", `{"name": "Pacote"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Kind    string         `json:"kind"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unprocessable_entity", body.Error.Kind)
	assert.Contains(t, body.Error.Details, "description")
	assert.Contains(t, body.Error.Details, "type")
	assert.Contains(t, body.Error.Details, "price")
}

func TestCreateRejectsUnknownType(t *testing.T) {
	e := newTestServer(&testutil.CatalogStore{})

	body := strings.Replace(createBody, `"followers"`, `"subscribers"`, 1)
	rec := doJSON(e, http.MethodPost, "/api/packages", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be one of: followers, likes, views, comments")
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	e := newTestServer(&testutil.CatalogStore{})

	rec := doJSON(e, http.MethodPost, "/api/packages", `{"name": `)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetMissingPackage(t *testing.T) {
	e := newTestServer(&testutil.CatalogStore{})

	rec := doJSON(e, http.MethodGet, "/api/packages/absent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"kind":"not_found","message":"package not found"}}`, rec.Body.String())
}

func TestUpdateReplacesFields(t *testing.T) {
	store := &testutil.CatalogStore{Packages: []entity.Package{{
		ID:           "pkg-1",
		Name:         "500 Seguidores",
		Description:  "Mais popular!",
		Type:         entity.PackageTypeFollowers,
		Quantity:     500,
		Price:        29.90,
		DeliveryTime: "2-6 horas",
		Popular:      true,
	}}}
	e := newTestServer(store)

	update := `{
		"name": "750 Seguidores",
		"description": "Atualizado",
		"type": "followers",
		"quantity": 750,
		"price": 39.90,
		"delivery_time": "3-8 horas",
		"popular": false
	}`
	rec := doJSON(e, http.MethodPut, "/api/packages/pkg-1", update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated dto.PackageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "pkg-1", updated.ID)
	assert.Equal(t, "750 Seguidores", updated.Name)
	assert.Equal(t, 750, updated.Quantity)
	assert.Equal(t, 39.90, updated.Price)
	assert.False(t, updated.Popular)
}

func TestUpdateMissingPackage(t *testing.T) {
	e := newTestServer(&testutil.CatalogStore{})

	rec := doJSON(e, http.MethodPut, "/api/packages/absent", createBody)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTwice(t *testing.T) {
	store := &testutil.CatalogStore{Packages: []entity.Package{{ID: "pkg-1", Name: "500 Seguidores"}}}
	e := newTestServer(store)

	rec := doJSON(e, http.MethodDelete, "/api/packages/pkg-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"package removed successfully"}`, rec.Body.String())

	rec = doJSON(e, http.MethodDelete, "/api/packages/pkg-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
