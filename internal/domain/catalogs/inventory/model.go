// Package inventory provides the InventoryItem catalog: costumes, characters
// and their parts, with condition and acquisition value.
package inventory

import (
	"context"

	"festa/internal/core/apperror"
	"festa/internal/core/entity"
	"festa/internal/core/types"
)

// ItemKind classifies what the item physically is.
type ItemKind string

const (
	KindCostume   ItemKind = "costume"
	KindCharacter ItemKind = "character" // full character set (head, body, shoes)
	KindPart      ItemKind = "part"
	KindProp      ItemKind = "prop"
)

// Condition grades the physical state of the item.
type Condition string

const (
	ConditionNew        Condition = "new"
	ConditionGood       Condition = "good"
	ConditionWorn       Condition = "worn"
	ConditionRepair     Condition = "repair"
	ConditionWrittenOff Condition = "written_off"
)

// Item represents a single inventory position.
type Item struct {
	entity.Catalog

	Kind ItemKind `db:"kind" json:"kind"`

	// CharacterName links costumes/parts to the character they belong to
	CharacterName *string `db:"character_name" json:"characterName,omitempty"`

	// Size is free-form (P/M/G/GG, shoe sizes, etc.)
	Size *string `db:"size" json:"size,omitempty"`

	// Quantity on hand; maintained manually, not decremented by bookings
	Quantity int `db:"quantity" json:"quantity"`

	Condition Condition `db:"condition" json:"condition"`

	// AcquisitionValue is what the item cost to buy or make
	AcquisitionValue types.Money `db:"acquisition_value" json:"acquisitionValue"`
}

// New creates a new inventory Item.
func New(code, name string, kind ItemKind) *Item {
	return &Item{
		Catalog:   entity.NewCatalog(code, name),
		Kind:      kind,
		Quantity:  1,
		Condition: ConditionGood,
	}
}

// Validate implements entity.Validatable interface.
func (i *Item) Validate(ctx context.Context) error {
	if err := i.Catalog.Validate(ctx); err != nil {
		return err
	}

	switch i.Kind {
	case KindCostume, KindCharacter, KindPart, KindProp:
	default:
		return apperror.NewValidation("invalid item kind").
			WithDetail("field", "kind").
			WithDetail("value", string(i.Kind))
	}

	switch i.Condition {
	case ConditionNew, ConditionGood, ConditionWorn, ConditionRepair, ConditionWrittenOff:
	default:
		return apperror.NewValidation("invalid condition").
			WithDetail("field", "condition").
			WithDetail("value", string(i.Condition))
	}

	if i.Quantity < 0 {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}

	if i.AcquisitionValue.IsNegative() {
		return apperror.NewValidation("acquisition value cannot be negative").
			WithDetail("field", "acquisitionValue")
	}

	return nil
}
