package handlers

import (
	"festa/internal/domain/catalogs/inventory"
	"festa/internal/infrastructure/http/v1/dto"
)

// InventoryHTTPHandler is the catalog handler specialized for inventory items.
type InventoryHTTPHandler = CatalogHandler[
	*inventory.Item,
	dto.CreateInventoryItemRequest,
	dto.UpdateInventoryItemRequest,
]

// NewInventoryHandler creates the inventory catalog handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHTTPHandler {
	config := CatalogHandlerConfig[
		*inventory.Item,
		dto.CreateInventoryItemRequest,
		dto.UpdateInventoryItemRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "inventory_item",
		MapCreateDTO: func(req dto.CreateInventoryItemRequest) (*inventory.Item, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateInventoryItemRequest, existing *inventory.Item) (*inventory.Item, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(i *inventory.Item) any {
			return dto.FromInventoryItem(i)
		},
	}

	return NewCatalogHandler(base, config)
}
