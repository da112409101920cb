package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"instagrow/internal/entity"
	catalogrepo "instagrow/internal/repository/catalog"
)

// Module provides the catalog seeder to Fx.
var Module = fx.Provide(New)

// Seeder inserts the default package catalog. It backs both the init-data
// endpoint and the CLI seed command.
type Seeder struct {
	store  catalogrepo.Store
	logger *zap.Logger
}

// New constructs a Seeder over the package store.
func New(store catalogrepo.Store, logger *zap.Logger) *Seeder {
	return &Seeder{store: store, logger: logger}
}

// Run inserts the default packages unless any package already exists. It
// returns the number inserted; 0 means the catalog was already initialized,
// even when the existing packages are unrelated to the default set.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		if s.logger != nil {
			s.logger.Info("catalog already initialized", zap.Int64("packages", count))
		}
		return 0, nil
	}

	pkgs := DefaultPackages()
	if err := s.store.InsertMany(ctx, pkgs); err != nil {
		return 0, err
	}

	if s.logger != nil {
		s.logger.Info("seeded default packages", zap.Int("count", len(pkgs)))
	}
	return len(pkgs), nil
}

// DefaultPackages returns the five follower tiers sold at launch. Each call
// produces fresh ids and timestamps.
func DefaultPackages() []entity.Package {
	now := time.Now().UTC()
	tiers := []entity.Package{
		{
			Name:         "100 Seguidores",
			Description:  "Ideal para começar! 100 seguidores brasileiros de qualidade.",
			Quantity:     100,
			Price:        9.90,
			DeliveryTime: "1-2 horas",
		},
		{
			Name:         "500 Seguidores",
			Description:  "Mais popular! 500 seguidores brasileiros ativos.",
			Quantity:     500,
			Price:        29.90,
			DeliveryTime: "2-6 horas",
			Popular:      true,
		},
		{
			Name:         "1.000 Seguidores",
			Description:  "Plano premium com 1.000 seguidores de alta qualidade.",
			Quantity:     1000,
			Price:        49.90,
			DeliveryTime: "6-12 horas",
		},
		{
			Name:         "2.500 Seguidores",
			Description:  "Para quem quer crescer rápido! 2.500 seguidores reais.",
			Quantity:     2500,
			Price:        99.90,
			DeliveryTime: "12-24 horas",
		},
		{
			Name:         "5.000 Seguidores",
			Description:  "Pacote profissional com 5.000 seguidores brasileiros.",
			Quantity:     5000,
			Price:        179.90,
			DeliveryTime: "24-48 horas",
		},
	}

	for i := range tiers {
		tiers[i].ID = uuid.NewString()
		tiers[i].Type = entity.PackageTypeFollowers
		tiers[i].CreatedAt = now
	}
	return tiers
}
