// Package finance provides the FinancialTransaction document: money the
// company owes (payable) or is owed (receivable), with payments recorded
// against it.
package finance

import (
	"context"
	"time"

	"festa/internal/core/apperror"
	"festa/internal/core/entity"
	"festa/internal/core/id"
	"festa/internal/core/types"
)

// Kind is the direction of the money.
type Kind string

const (
	KindPayable    Kind = "payable"
	KindReceivable Kind = "receivable"
)

// Status of a transaction.
type Status string

const (
	StatusOpen     Status = "open"
	StatusPaid     Status = "paid"
	StatusCanceled Status = "canceled"
)

// PaymentMethod enumerates how money moved.
type PaymentMethod string

const (
	MethodPix      PaymentMethod = "pix"
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

// Transaction represents one payable or receivable.
// Document.Date is the issue date; DueDate is when it falls due.
type Transaction struct {
	entity.Document

	Kind Kind `db:"kind" json:"kind"`

	Description string `db:"description" json:"description"`

	// ClientID links receivables to the client who owes them
	ClientID *id.ID `db:"client_id" json:"clientId,omitempty"`

	// EventID links the transaction to the booking that produced it
	EventID *id.ID `db:"event_id" json:"eventId,omitempty"`

	// CounterpartyName is free-form for payables (suppliers, rent, etc.)
	CounterpartyName string `db:"counterparty_name" json:"counterpartyName,omitempty"`

	DueDate time.Time `db:"due_date" json:"dueDate"`

	Amount types.Money `db:"amount" json:"amount"`

	// PaidTotal is derived from payments; kept denormalized for list views
	PaidTotal types.Money `db:"paid_total" json:"paidTotal"`

	Status Status `db:"status" json:"status"`

	// Payments recorded against this transaction
	Payments []Payment `db:"-" json:"payments"`
}

// Payment is one settlement against a transaction.
type Payment struct {
	PaymentID id.ID `db:"payment_id" json:"paymentId"`

	TransactionID id.ID `db:"transaction_id" json:"transactionId"`

	Date   time.Time     `db:"date" json:"date"`
	Amount types.Money   `db:"amount" json:"amount"`
	Method PaymentMethod `db:"method" json:"method"`
	Note   string        `db:"note" json:"note,omitempty"`
}

// New creates a new open Transaction.
func New(kind Kind, description string, dueDate time.Time, amount types.Money) *Transaction {
	return &Transaction{
		Document:    entity.NewDocument(),
		Kind:        kind,
		Description: description,
		DueDate:     dueDate,
		Amount:      amount,
		Status:      StatusOpen,
		Payments:    make([]Payment, 0),
	}
}

// Remaining is the still unpaid part of the amount.
func (t *Transaction) Remaining() types.Money {
	return t.Amount.Sub(t.PaidTotal)
}

// IsOverdue reports whether an open transaction is past its due date.
func (t *Transaction) IsOverdue(now time.Time) bool {
	return t.Status == StatusOpen && now.After(t.DueDate)
}

// RecalculatePaid refreshes PaidTotal and the paid status from payments.
func (t *Transaction) RecalculatePaid() {
	total := types.Zero()
	for _, p := range t.Payments {
		total = total.Add(p.Amount)
	}
	t.PaidTotal = total
	if t.Status != StatusCanceled {
		if total.GreaterThanOrEqual(t.Amount) && t.Amount.IsPositive() {
			t.Status = StatusPaid
		} else {
			t.Status = StatusOpen
		}
	}
}

// Validate implements entity.Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}

	if t.Kind != KindPayable && t.Kind != KindReceivable {
		return apperror.NewValidation("invalid transaction kind").
			WithDetail("field", "kind").
			WithDetail("value", string(t.Kind))
	}

	if t.Description == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}

	if t.DueDate.IsZero() {
		return apperror.NewValidation("due date is required").
			WithDetail("field", "dueDate")
	}

	if !t.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}

	switch t.Status {
	case StatusOpen, StatusPaid, StatusCanceled:
	default:
		return apperror.NewValidation("invalid transaction status").
			WithDetail("field", "status").
			WithDetail("value", string(t.Status))
	}

	return nil
}

// ValidatePayment checks a payment before it is recorded.
func (t *Transaction) ValidatePayment(p Payment) error {
	if t.Status == StatusCanceled {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"cannot record payment on a canceled transaction",
		).WithDetail("transaction_id", t.ID.String())
	}

	if !p.Amount.IsPositive() {
		return apperror.NewValidation("payment amount must be positive").
			WithDetail("field", "amount")
	}

	switch p.Method {
	case MethodPix, MethodCash, MethodCard, MethodTransfer:
	default:
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "method").
			WithDetail("value", string(p.Method))
	}

	if p.Amount.GreaterThan(t.Remaining()) {
		return apperror.NewOverpayment(t.ID.String(), p.Amount.String(), t.Remaining().String())
	}

	return nil
}
