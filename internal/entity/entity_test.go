package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageTypeValid(t *testing.T) {
	for _, pt := range PackageTypes() {
		assert.True(t, pt.Valid(), "expected %q to be valid", pt)
	}

	assert.False(t, PackageType("subscribers").Valid())
	assert.False(t, PackageType("").Valid())
	assert.False(t, PackageType("FOLLOWERS").Valid())
}

func TestOrderStatusValid(t *testing.T) {
	for _, st := range OrderStatuses() {
		assert.True(t, st.Valid(), "expected %q to be valid", st)
	}

	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("Pending").Valid())
}

func TestRevenueStatuses(t *testing.T) {
	statuses := RevenueStatuses()

	assert.Equal(t, []OrderStatus{OrderStatusPaid, OrderStatusProcessing, OrderStatusCompleted}, statuses)
	assert.NotContains(t, statuses, OrderStatusPending)
	assert.NotContains(t, statuses, OrderStatusCancelled)
}
