package reference

import (
	"context"

	"festa/internal/core/tx"
	"festa/internal/domain"
	"festa/internal/domain/catalogs"
	"festa/internal/domain/filter"
)

// Repository defines the interface for reference Value persistence.
type Repository interface {
	domain.CatalogRepository[*Value]
}

// Service provides business logic for reference value lists.
type Service struct {
	*domain.CatalogService[*Value]
	repo Repository
}

// NewService creates a new reference Service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Value]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "reference value",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, func(ctx context.Context, v *Value) error {
		if v.Code == "" {
			v.Code = catalogs.NextCode("REF", v.ID)
		}
		return nil
	})

	return svc
}

// ListByKind returns one value list ordered by position.
func (s *Service) ListByKind(ctx context.Context, kind Kind, lf domain.ListFilter) (domain.ListResult[*Value], error) {
	lf.AdvancedFilters = append(lf.AdvancedFilters, filter.Item{
		Field:    "kind",
		Operator: filter.Equal,
		Value:    string(kind),
	})
	if lf.OrderBy == "" || lf.OrderBy == "name" {
		lf.OrderBy = "position"
	}
	return s.List(ctx, lf)
}
