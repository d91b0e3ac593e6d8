package inventory

import (
	"context"

	"festa/internal/core/tx"
	"festa/internal/domain"
	"festa/internal/domain/catalogs"
)

// Repository defines the interface for inventory Item persistence.
type Repository interface {
	domain.CatalogRepository[*Item]
}

// Service provides business logic for the inventory catalog.
type Service struct {
	*domain.CatalogService[*Item]
	repo Repository
}

// NewService creates a new inventory Service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Item]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "inventory item",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, func(ctx context.Context, i *Item) error {
		if i.Code == "" {
			i.Code = catalogs.NextCode("INV", i.ID)
		}
		return nil
	})

	return svc
}
