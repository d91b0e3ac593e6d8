package catalog_repo

import (
	"festa/internal/domain/catalogs/inventory"
	"festa/internal/infrastructure/storage/postgres"
)

const inventoryTable = "cat_inventory_items"

// InventoryRepo implements inventory.Repository.
type InventoryRepo struct {
	*BaseCatalogRepo[*inventory.Item]
}

// NewInventoryRepo creates a new inventory repository.
func NewInventoryRepo(txm *postgres.TxManager) *InventoryRepo {
	return &InventoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*inventory.Item](
			txm,
			inventoryTable,
			postgres.ExtractDBColumns[inventory.Item](),
			func() *inventory.Item { return &inventory.Item{} },
		),
	}
}
