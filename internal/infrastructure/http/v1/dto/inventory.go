package dto

import (
	"festa/internal/core/types"
	"festa/internal/domain/catalogs/inventory"
)

// InventoryItemResponse contains inventory item fields.
type InventoryItemResponse struct {
	BaseResponse
	Code             string      `json:"code"`
	Name             string      `json:"name"`
	Kind             string      `json:"kind"`
	CharacterName    *string     `json:"characterName,omitempty"`
	Size             *string     `json:"size,omitempty"`
	Quantity         int         `json:"quantity"`
	Condition        string      `json:"condition"`
	AcquisitionValue types.Money `json:"acquisitionValue"`
}

// FromInventoryItem creates InventoryItemResponse from the entity.
func FromInventoryItem(i *inventory.Item) InventoryItemResponse {
	return InventoryItemResponse{
		BaseResponse:     FromBaseCatalog(i.BaseCatalog),
		Code:             i.Code,
		Name:             i.Name,
		Kind:             string(i.Kind),
		CharacterName:    i.CharacterName,
		Size:             i.Size,
		Quantity:         i.Quantity,
		Condition:        string(i.Condition),
		AcquisitionValue: i.AcquisitionValue,
	}
}

// CreateInventoryItemRequest for creating inventory items.
type CreateInventoryItemRequest struct {
	Code             string      `json:"code"`
	Name             string      `json:"name" binding:"required"`
	Kind             string      `json:"kind" binding:"required"`
	CharacterName    *string     `json:"characterName"`
	Size             *string     `json:"size"`
	Quantity         int         `json:"quantity"`
	Condition        string      `json:"condition"`
	AcquisitionValue types.Money `json:"acquisitionValue"`
}

// ToEntity maps the request to a new inventory item.
func (r CreateInventoryItemRequest) ToEntity() *inventory.Item {
	i := inventory.New(r.Code, r.Name, inventory.ItemKind(r.Kind))
	i.CharacterName = r.CharacterName
	i.Size = r.Size
	i.Quantity = r.Quantity
	if r.Condition != "" {
		i.Condition = inventory.Condition(r.Condition)
	}
	i.AcquisitionValue = r.AcquisitionValue
	return i
}

// UpdateInventoryItemRequest for updating inventory items.
type UpdateInventoryItemRequest struct {
	Name             *string      `json:"name"`
	Kind             *string      `json:"kind"`
	CharacterName    *string      `json:"characterName"`
	Size             *string      `json:"size"`
	Quantity         *int         `json:"quantity"`
	Condition        *string      `json:"condition"`
	AcquisitionValue *types.Money `json:"acquisitionValue"`
	Version          int          `json:"version" binding:"required,min=1"`
}

// ApplyTo maps changed fields onto the existing item.
func (r UpdateInventoryItemRequest) ApplyTo(i *inventory.Item) {
	if r.Name != nil {
		i.Name = *r.Name
	}
	if r.Kind != nil {
		i.Kind = inventory.ItemKind(*r.Kind)
	}
	if r.CharacterName != nil {
		i.CharacterName = r.CharacterName
	}
	if r.Size != nil {
		i.Size = r.Size
	}
	if r.Quantity != nil {
		i.Quantity = *r.Quantity
	}
	if r.Condition != nil {
		i.Condition = inventory.Condition(*r.Condition)
	}
	if r.AcquisitionValue != nil {
		i.AcquisitionValue = *r.AcquisitionValue
	}
	i.Version = r.Version
}
