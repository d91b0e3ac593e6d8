package catalog_repo

import (
	"festa/internal/domain/catalogs/reference"
	"festa/internal/infrastructure/storage/postgres"
)

const referenceTable = "cat_reference_values"

// ReferenceRepo implements reference.Repository.
type ReferenceRepo struct {
	*BaseCatalogRepo[*reference.Value]
}

// NewReferenceRepo creates a new reference value repository.
func NewReferenceRepo(txm *postgres.TxManager) *ReferenceRepo {
	return &ReferenceRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*reference.Value](
			txm,
			referenceTable,
			postgres.ExtractDBColumns[reference.Value](),
			func() *reference.Value { return &reference.Value{} },
		),
	}
}
