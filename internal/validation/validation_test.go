package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instagrow/internal/dto"
	"instagrow/pkg/errorbank"
)

func floatPtr(v float64) *float64 { return &v }

func validPackageRequest() dto.CreatePackageRequest {
	return dto.CreatePackageRequest{
		Name:         "100 Seguidores",
		Description:  "Ideal para começar",
		Type:         "followers",
		Quantity:     100,
		Price:        floatPtr(9.90),
		DeliveryTime: "1-2 horas",
	}
}

func TestValidateAcceptsCompletePackage(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(validPackageRequest()))
}

func TestValidateReportsMissingFieldsByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(dto.CreatePackageRequest{})
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindUnprocessableEntity, appErr.Kind())

	details := appErr.Details()
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "is required", details["description"])
	assert.Equal(t, "is required", details["delivery_time"])
	assert.Equal(t, "is required", details["price"])
	assert.Contains(t, details, "quantity")
	assert.Contains(t, details, "type")
}

func TestValidateRejectsUnknownPackageType(t *testing.T) {
	v := New()

	req := validPackageRequest()
	req.Type = "subscribers"

	appErr := errorbank.From(v.Validate(req))
	require.Equal(t, errorbank.KindUnprocessableEntity, appErr.Kind())
	assert.Equal(t, "must be one of: followers, likes, views, comments", appErr.Details()["type"])
}

func TestValidateRejectsNonPositiveQuantity(t *testing.T) {
	v := New()

	req := validPackageRequest()
	req.Quantity = 0

	appErr := errorbank.From(v.Validate(req))
	require.Equal(t, errorbank.KindUnprocessableEntity, appErr.Kind())
	assert.Equal(t, "must be greater than 0", appErr.Details()["quantity"])
}

func TestValidateRejectsNegativePrice(t *testing.T) {
	v := New()

	req := validPackageRequest()
	req.Price = floatPtr(-1)

	appErr := errorbank.From(v.Validate(req))
	require.Equal(t, errorbank.KindUnprocessableEntity, appErr.Kind())
	assert.Equal(t, "must be 0 or greater", appErr.Details()["price"])
}

func TestValidateAcceptsZeroPrice(t *testing.T) {
	v := New()

	req := validPackageRequest()
	req.Price = floatPtr(0)

	assert.NoError(t, v.Validate(req))
}

func TestValidateRejectsStatusOutsideEnum(t *testing.T) {
	v := New()

	appErr := errorbank.From(v.Validate(dto.UpdateOrderStatusRequest{Status: "shipped"}))
	require.Equal(t, errorbank.KindUnprocessableEntity, appErr.Kind())
	assert.Equal(t, "must be one of: pending, paid, processing, completed, cancelled", appErr.Details()["status"])
}

func TestValidateAcceptsEveryOrderStatus(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "paid", "processing", "completed", "cancelled"} {
		assert.NoError(t, v.Validate(dto.UpdateOrderStatusRequest{Status: status}), status)
	}
}
