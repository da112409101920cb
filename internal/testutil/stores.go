// Package testutil provides in-memory store implementations standing in for
// Mongo in unit tests.
package testutil

import (
	"context"
	"sort"
	"time"

	"instagrow/internal/entity"
	catalogrepo "instagrow/internal/repository/catalog"
	orderrepo "instagrow/internal/repository/order"
)

// CatalogStore is an in-memory catalog store. When Err is set every method
// fails with it.
type CatalogStore struct {
	Packages []entity.Package
	Err      error
}

var _ catalogrepo.Store = (*CatalogStore)(nil)

func (s *CatalogStore) List(ctx context.Context) ([]entity.Package, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]entity.Package, len(s.Packages))
	copy(out, s.Packages)
	return out, nil
}

func (s *CatalogStore) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Packages {
		if s.Packages[i].ID == id {
			pkg := s.Packages[i]
			return &pkg, nil
		}
	}
	return nil, catalogrepo.ErrNotFound
}

func (s *CatalogStore) Insert(ctx context.Context, pkg *entity.Package) error {
	if s.Err != nil {
		return s.Err
	}
	s.Packages = append(s.Packages, *pkg)
	return nil
}

func (s *CatalogStore) Replace(ctx context.Context, id string, pkg *entity.Package) (*entity.Package, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Packages {
		if s.Packages[i].ID != id {
			continue
		}
		s.Packages[i].Name = pkg.Name
		s.Packages[i].Description = pkg.Description
		s.Packages[i].Type = pkg.Type
		s.Packages[i].Quantity = pkg.Quantity
		s.Packages[i].Price = pkg.Price
		s.Packages[i].DeliveryTime = pkg.DeliveryTime
		s.Packages[i].Popular = pkg.Popular
		updated := s.Packages[i]
		return &updated, nil
	}
	return nil, catalogrepo.ErrNotFound
}

func (s *CatalogStore) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Packages {
		if s.Packages[i].ID == id {
			s.Packages = append(s.Packages[:i], s.Packages[i+1:]...)
			return nil
		}
	}
	return catalogrepo.ErrNotFound
}

func (s *CatalogStore) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Packages)), nil
}

func (s *CatalogStore) InsertMany(ctx context.Context, pkgs []entity.Package) error {
	if s.Err != nil {
		return s.Err
	}
	s.Packages = append(s.Packages, pkgs...)
	return nil
}

// OrderStore is an in-memory order store computing counts and sums from its
// slice the way the Mongo aggregations do. InsertErr fails only Insert; Err
// fails every method.
type OrderStore struct {
	Orders    []entity.Order
	Err       error
	InsertErr error
}

var _ orderrepo.Store = (*OrderStore)(nil)

func (s *OrderStore) Insert(ctx context.Context, order *entity.Order) error {
	if s.Err != nil {
		return s.Err
	}
	if s.InsertErr != nil {
		return s.InsertErr
	}
	s.Orders = append(s.Orders, *order)
	return nil
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, orderrepo.ErrNotFound
}

func (s *OrderStore) List(ctx context.Context) ([]entity.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]entity.Order, len(s.Orders))
	copy(out, s.Orders)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) (*entity.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
			s.Orders[i].UpdatedAt = updatedAt
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, orderrepo.ErrNotFound
}

func (s *OrderStore) CountAll(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Orders)), nil
}

func (s *OrderStore) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var n int64
	for i := range s.Orders {
		if s.Orders[i].Status == status {
			n++
		}
	}
	return n, nil
}

func (s *OrderStore) SumPriceByStatuses(ctx context.Context, statuses []entity.OrderStatus) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var total float64
	for i := range s.Orders {
		for _, status := range statuses {
			if s.Orders[i].Status == status {
				total += s.Orders[i].PackagePrice
				break
			}
		}
	}
	return total, nil
}
