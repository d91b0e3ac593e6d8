package employee

import (
	"context"

	"festa/internal/core/tx"
	"festa/internal/domain"
	"festa/internal/domain/catalogs"
)

// Repository defines the interface for Employee persistence.
type Repository interface {
	domain.CatalogRepository[*Employee]
}

// Service provides business logic for the Employee catalog.
type Service struct {
	*domain.CatalogService[*Employee]
	repo Repository
}

// NewService creates a new Employee service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Employee]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "employee",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, func(ctx context.Context, e *Employee) error {
		if e.Code == "" {
			e.Code = catalogs.NextCode("EMP", e.ID)
		}
		return nil
	})

	return svc
}

// Deactivate turns off assignment to new events without deleting history.
func (s *Service) Deactivate(ctx context.Context, e *Employee) error {
	e.Active = false
	return s.Update(ctx, e)
}
