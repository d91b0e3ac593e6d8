package dto

import (
	"time"

	"festa/internal/core/id"
	"festa/internal/core/types"
	"festa/internal/domain/documents/finance"
)

// PaymentDTO is one settlement against a transaction.
type PaymentDTO struct {
	PaymentID string      `json:"paymentId,omitempty"`
	Date      time.Time   `json:"date"`
	Amount    types.Money `json:"amount"`
	Method    string      `json:"method"`
	Note      string      `json:"note,omitempty"`
}

func fromPayment(p finance.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID: p.PaymentID.String(),
		Date:      p.Date,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Note:      p.Note,
	}
}

// TransactionResponse contains financial transaction fields.
type TransactionResponse struct {
	DocumentResponse
	Kind             string       `json:"kind"`
	Description      string       `json:"description"`
	ClientID         *string      `json:"clientId,omitempty"`
	EventID          *string      `json:"eventId,omitempty"`
	CounterpartyName string       `json:"counterpartyName,omitempty"`
	DueDate          time.Time    `json:"dueDate"`
	Amount           types.Money  `json:"amount"`
	PaidTotal        types.Money  `json:"paidTotal"`
	Status           string       `json:"status"`
	Payments         []PaymentDTO `json:"payments"`
}

// FromTransaction creates TransactionResponse from the entity.
func FromTransaction(t *finance.Transaction) TransactionResponse {
	resp := TransactionResponse{
		DocumentResponse: FromDocument(t.Document),
		Kind:             string(t.Kind),
		Description:      t.Description,
		CounterpartyName: t.CounterpartyName,
		DueDate:          t.DueDate,
		Amount:           t.Amount,
		PaidTotal:        t.PaidTotal,
		Status:           string(t.Status),
		Payments:         make([]PaymentDTO, 0, len(t.Payments)),
	}
	if t.ClientID != nil {
		s := t.ClientID.String()
		resp.ClientID = &s
	}
	if t.EventID != nil {
		s := t.EventID.String()
		resp.EventID = &s
	}
	for _, p := range t.Payments {
		resp.Payments = append(resp.Payments, fromPayment(p))
	}
	return resp
}

// CreateTransactionRequest for creating financial transactions.
type CreateTransactionRequest struct {
	Kind             string      `json:"kind" binding:"required,oneof=payable receivable"`
	Description      string      `json:"description" binding:"required"`
	ClientID         *string     `json:"clientId"`
	EventID          *string     `json:"eventId"`
	CounterpartyName string      `json:"counterpartyName"`
	DueDate          time.Time   `json:"dueDate" binding:"required"`
	Amount           types.Money `json:"amount" binding:"required"`
	Comment          string      `json:"comment"`
}

// ToEntity maps the request to a new transaction.
func (r CreateTransactionRequest) ToEntity() (*finance.Transaction, error) {
	t := finance.New(finance.Kind(r.Kind), r.Description, r.DueDate, r.Amount)
	if r.ClientID != nil && *r.ClientID != "" {
		clientID, err := id.Parse(*r.ClientID)
		if err != nil {
			return nil, err
		}
		t.ClientID = &clientID
	}
	if r.EventID != nil && *r.EventID != "" {
		eventID, err := id.Parse(*r.EventID)
		if err != nil {
			return nil, err
		}
		t.EventID = &eventID
	}
	t.CounterpartyName = r.CounterpartyName
	t.Comment = r.Comment
	return t, nil
}

// UpdateTransactionRequest for updating financial transactions.
type UpdateTransactionRequest struct {
	Description      *string      `json:"description"`
	CounterpartyName *string      `json:"counterpartyName"`
	DueDate          *time.Time   `json:"dueDate"`
	Amount           *types.Money `json:"amount"`
	Comment          *string      `json:"comment"`
	Version          int          `json:"version" binding:"required,min=1"`
}

// ApplyTo maps changed fields onto the existing transaction.
func (r UpdateTransactionRequest) ApplyTo(t *finance.Transaction) {
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.CounterpartyName != nil {
		t.CounterpartyName = *r.CounterpartyName
	}
	if r.DueDate != nil {
		t.DueDate = *r.DueDate
	}
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	if r.Comment != nil {
		t.Comment = *r.Comment
	}
	t.Version = r.Version
}

// RecordPaymentRequest for recording a payment.
type RecordPaymentRequest struct {
	Date   time.Time   `json:"date" binding:"required"`
	Amount types.Money `json:"amount" binding:"required"`
	Method string      `json:"method" binding:"required,oneof=pix cash card transfer"`
	Note   string      `json:"note"`
}

// ToPayment maps the request to a payment.
func (r RecordPaymentRequest) ToPayment() finance.Payment {
	return finance.Payment{
		PaymentID: id.New(),
		Date:      r.Date,
		Amount:    r.Amount,
		Method:    finance.PaymentMethod(r.Method),
		Note:      r.Note,
	}
}
