package client

import (
	"context"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/core/tx"
	"festa/internal/domain"
	"festa/internal/domain/catalogs"
)

// Service provides business logic for the Client catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Client] // Embedded for delegation
	repo Repository
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	base.Hooks().On(domain.BeforeUpdate, svc.prepareForUpdate)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks before create.
func (s *Service) prepareForCreate(ctx context.Context, c *Client) error {
	if c.Code == "" {
		c.Code = catalogs.NextCode("CLI", c.ID)
	}
	return s.checkTaxIDUnique(ctx, c)
}

func (s *Service) prepareForUpdate(ctx context.Context, c *Client) error {
	return s.checkTaxIDUnique(ctx, c)
}

// FindByTaxID retrieves a client by CPF/CNPJ.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (*Client, error) {
	return s.repo.FindByTaxID(ctx, taxID)
}

func (s *Service) checkTaxIDUnique(ctx context.Context, c *Client) error {
	if c.TaxID == nil || *c.TaxID == "" {
		return nil
	}
	exists, err := s.taxIDExists(ctx, *c.TaxID, c.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewConflict("client with this CPF/CNPJ already exists").
			WithDetail("taxId", *c.TaxID)
	}
	return nil
}

func (s *Service) taxIDExists(ctx context.Context, taxID string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByTaxID(ctx, taxID)
	if err != nil {
		// Not found is OK; other errors must be propagated (DB errors, timeouts, etc.).
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
