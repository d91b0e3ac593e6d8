package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"festa/internal/core/apperror"
	"festa/internal/domain/catalogs/client"
	"festa/internal/infrastructure/storage/postgres"
)

const clientTable = "cat_clients"

// ClientRepo implements client.Repository.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo(txm *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*client.Client](
			txm,
			clientTable,
			postgres.ExtractDBColumns[client.Client](),
			func() *client.Client { return &client.Client{} },
		),
	}
}

// FindByTaxID retrieves a client by CPF or CNPJ.
func (r *ClientRepo) FindByTaxID(ctx context.Context, taxID string) (*client.Client, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"tax_id": taxID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("client", taxID)
		}
		return nil, err
	}
	return c, nil
}
