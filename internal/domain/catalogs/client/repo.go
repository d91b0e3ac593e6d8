package client

import (
	"context"

	"festa/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.CatalogRepository[*Client]

	// FindByTaxID retrieves a client by CPF/CNPJ (unique when present).
	FindByTaxID(ctx context.Context, taxID string) (*Client, error)
}
