package seeder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"instagrow/internal/entity"
	"instagrow/internal/testutil"
)

func TestRunSeedsEmptyCatalog(t *testing.T) {
	store := &testutil.CatalogStore{}
	s := New(store, zap.NewNop())

	inserted, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, inserted)
	require.Len(t, store.Packages, 5)

	popular := 0
	for _, pkg := range store.Packages {
		assert.NotEmpty(t, pkg.ID)
		assert.Equal(t, entity.PackageTypeFollowers, pkg.Type)
		assert.False(t, pkg.CreatedAt.IsZero())
		if pkg.Popular {
			popular++
			assert.Equal(t, "500 Seguidores", pkg.Name)
		}
	}
	assert.Equal(t, 1, popular)
}

func TestRunSecondCallIsNoOp(t *testing.T) {
	store := &testutil.CatalogStore{}
	s := New(store, zap.NewNop())

	first, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, first)

	second, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, second)
	assert.Len(t, store.Packages, 5)
}

func TestRunSkipsNonEmptyCatalogEvenIfUnrelated(t *testing.T) {
	store := &testutil.CatalogStore{Packages: []entity.Package{
		{ID: "custom", Name: "Custom", Type: entity.PackageTypeLikes},
	}}
	s := New(store, zap.NewNop())

	inserted, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, inserted)
	assert.Len(t, store.Packages, 1)
}

func TestDefaultPackagesTiers(t *testing.T) {
	pkgs := DefaultPackages()

	require.Len(t, pkgs, 5)

	quantities := make([]int, 0, len(pkgs))
	prices := make([]float64, 0, len(pkgs))
	for _, pkg := range pkgs {
		quantities = append(quantities, pkg.Quantity)
		prices = append(prices, pkg.Price)
	}
	assert.Equal(t, []int{100, 500, 1000, 2500, 5000}, quantities)
	assert.Equal(t, []float64{9.90, 29.90, 49.90, 99.90, 179.90}, prices)
}
