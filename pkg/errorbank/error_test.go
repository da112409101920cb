package errorbank

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsMessageToKind(t *testing.T) {
	appErr := New(KindNotFound, "")

	assert.Equal(t, KindNotFound, appErr.Kind())
	assert.Equal(t, "not_found", appErr.Message())
}

func TestErrorIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Internal("lookup failed", WithCause(cause))

	assert.Equal(t, "lookup failed: connection refused", appErr.Error())
	assert.ErrorIs(t, appErr, cause)
}

func TestErrorWithoutCause(t *testing.T) {
	appErr := NotFound("package not found")

	assert.Equal(t, "package not found", appErr.Error())
	assert.NoError(t, appErr.Unwrap())
}

func TestWithDetailAccumulates(t *testing.T) {
	appErr := Unprocessable("validation failed",
		WithDetail("quantity", "must be greater than 0"),
		WithDetail("type", "must be one of followers, likes, views, comments"),
	)

	details := appErr.Details()
	require.Len(t, details, 2)
	assert.Equal(t, "must be greater than 0", details["quantity"])
}

func TestWithDetailsMerges(t *testing.T) {
	appErr := Unprocessable("validation failed",
		WithDetail("name", "is required"),
		WithDetails(map[string]any{"price": "must be 0 or greater"}),
	)

	details := appErr.Details()
	require.Len(t, details, 2)
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be 0 or greater", details["price"])
}

func TestStatusCodePerKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("").StatusCode())
	assert.Equal(t, http.StatusConflict, Conflict("").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("").StatusCode())
	assert.Equal(t, http.StatusUnprocessableEntity, Unprocessable("").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal("").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Kind("unknown").StatusCode())
}

func TestFromPassesThroughAppError(t *testing.T) {
	original := NotFound("order not found")

	coerced := From(original)

	assert.Same(t, original, coerced)
}

func TestFromUnwrapsNestedAppError(t *testing.T) {
	original := Unprocessable("bad status")
	wrapped := fmt.Errorf("handler: %w", original)

	coerced := From(wrapped)

	assert.Same(t, original, coerced)
}

func TestFromWrapsUnknownError(t *testing.T) {
	cause := errors.New("write timeout")

	coerced := From(cause)

	require.NotNil(t, coerced)
	assert.Equal(t, KindInternal, coerced.Kind())
	assert.ErrorIs(t, coerced, cause)
}

func TestFromNil(t *testing.T) {
	assert.Nil(t, From(nil))
}

func TestNilReceiverSafety(t *testing.T) {
	var appErr *AppError

	assert.Equal(t, "<nil>", appErr.Error())
	assert.Equal(t, KindInternal, appErr.Kind())
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode())
	assert.Empty(t, appErr.Message())
	assert.Nil(t, appErr.Details())
}
