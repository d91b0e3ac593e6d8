package dto

import (
	"time"

	"festa/internal/core/types"
	"festa/internal/domain/documents/purchase"
)

// PurchaseLineDTO is one purchased item.
type PurchaseLineDTO struct {
	LineID      string      `json:"lineId,omitempty"`
	LineNo      int         `json:"lineNo"`
	Description string      `json:"description" binding:"required"`
	Quantity    int         `json:"quantity"`
	UnitPrice   types.Money `json:"unitPrice"`
	Amount      types.Money `json:"amount"`
}

func fromPurchaseLine(l purchase.Line) PurchaseLineDTO {
	return PurchaseLineDTO{
		LineID:      l.LineID.String(),
		LineNo:      l.LineNo,
		Description: l.Description,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Amount:      l.Amount,
	}
}

// PurchaseResponse contains purchase fields.
type PurchaseResponse struct {
	DocumentResponse
	SupplierName string            `json:"supplierName"`
	Status       string            `json:"status"`
	Total        types.Money       `json:"total"`
	Lines        []PurchaseLineDTO `json:"lines"`
}

// FromPurchase creates PurchaseResponse from the entity.
func FromPurchase(p *purchase.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		DocumentResponse: FromDocument(p.Document),
		SupplierName:     p.SupplierName,
		Status:           string(p.Status),
		Total:            p.Total,
		Lines:            make([]PurchaseLineDTO, 0, len(p.Lines)),
	}
	for _, l := range p.Lines {
		resp.Lines = append(resp.Lines, fromPurchaseLine(l))
	}
	return resp
}

// CreatePurchaseRequest for creating purchases.
type CreatePurchaseRequest struct {
	SupplierName string            `json:"supplierName" binding:"required"`
	Date         *time.Time        `json:"date"`
	Comment      string            `json:"comment"`
	Lines        []PurchaseLineDTO `json:"lines"`
}

// ToEntity maps the request to a new purchase.
func (r CreatePurchaseRequest) ToEntity() *purchase.Purchase {
	p := purchase.New(r.SupplierName)
	if r.Date != nil {
		p.Date = *r.Date
	}
	p.Comment = r.Comment
	for _, l := range r.Lines {
		qty := l.Quantity
		if qty <= 0 {
			qty = 1
		}
		p.AddLine(l.Description, qty, l.UnitPrice)
	}
	return p
}

// UpdatePurchaseRequest for updating purchases.
type UpdatePurchaseRequest struct {
	SupplierName *string            `json:"supplierName"`
	Date         *time.Time         `json:"date"`
	Comment      *string            `json:"comment"`
	Status       *string            `json:"status"`
	Lines        *[]PurchaseLineDTO `json:"lines"`
	Version      int                `json:"version" binding:"required,min=1"`
}

// ApplyTo maps changed fields onto the existing purchase.
func (r UpdatePurchaseRequest) ApplyTo(p *purchase.Purchase) {
	if r.SupplierName != nil {
		p.SupplierName = *r.SupplierName
	}
	if r.Date != nil {
		p.Date = *r.Date
	}
	if r.Comment != nil {
		p.Comment = *r.Comment
	}
	if r.Status != nil {
		p.Status = purchase.Status(*r.Status)
	}
	if r.Lines != nil {
		p.Lines = nil
		for _, l := range *r.Lines {
			qty := l.Quantity
			if qty <= 0 {
				qty = 1
			}
			p.AddLine(l.Description, qty, l.UnitPrice)
		}
	}
	p.Version = r.Version
}
