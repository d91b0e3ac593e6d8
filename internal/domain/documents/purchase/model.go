// Package purchase provides the Purchase document: supplies bought for the
// company (fabric, props, party materials).
package purchase

import (
	"context"

	"festa/internal/core/apperror"
	"festa/internal/core/entity"
	"festa/internal/core/id"
	"festa/internal/core/types"
)

// Status tracks whether the purchase has been received and settled.
type Status string

const (
	StatusOrdered  Status = "ordered"
	StatusReceived Status = "received"
	StatusCanceled Status = "canceled"
)

// Purchase represents one buy from a supplier.
type Purchase struct {
	entity.Document

	// SupplierName is free-form; suppliers are not a managed catalog
	SupplierName string `db:"supplier_name" json:"supplierName"`

	Status Status `db:"status" json:"status"`

	// Total is calculated from lines
	Total types.Money `db:"total" json:"total"`

	// Table part: purchased positions
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one purchased position.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	Description string      `db:"description" json:"description"`
	Quantity    int         `db:"quantity" json:"quantity"`
	UnitPrice   types.Money `db:"unit_price" json:"unitPrice"`
	Amount      types.Money `db:"amount" json:"amount"`
}

// New creates a new ordered Purchase.
func New(supplierName string) *Purchase {
	return &Purchase{
		Document:     entity.NewDocument(),
		SupplierName: supplierName,
		Status:       StatusOrdered,
		Lines:        make([]Line, 0),
	}
}

// AddLine appends a position and recalculates the total.
func (p *Purchase) AddLine(description string, quantity int, unitPrice types.Money) {
	line := Line{
		LineID:      id.New(),
		LineNo:      len(p.Lines) + 1,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      unitPrice.Mul(types.NewMoney(float64(quantity))),
	}
	p.Lines = append(p.Lines, line)
	p.RecalculateTotal()
}

// RecalculateTotal updates the document total from lines.
func (p *Purchase) RecalculateTotal() {
	total := types.Zero()
	for i := range p.Lines {
		p.Lines[i].Amount = p.Lines[i].UnitPrice.Mul(types.NewMoney(float64(p.Lines[i].Quantity)))
		total = total.Add(p.Lines[i].Amount)
	}
	p.Total = total
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if p.SupplierName == "" {
		return apperror.NewValidation("supplier name is required").
			WithDetail("field", "supplierName")
	}

	switch p.Status {
	case StatusOrdered, StatusReceived, StatusCanceled:
	default:
		return apperror.NewValidation("invalid purchase status").
			WithDetail("field", "status").
			WithDetail("value", string(p.Status))
	}

	if len(p.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range p.Lines {
		if line.Description == "" {
			return apperror.NewValidation("line description is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.UnitPrice.IsNegative() {
			return apperror.NewValidation("unit price cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}
