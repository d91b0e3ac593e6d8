// Package finance provides the FinancialTransaction document service.
package finance

import (
	"context"
	"fmt"
	"time"

	"festa/internal/core/id"
	"festa/internal/core/tx"
	"festa/internal/domain"
	"festa/internal/domain/documents"
	"festa/pkg/logger"
)

// Repository defines operations for financial transactions.
type Repository interface {
	Create(ctx context.Context, doc *Transaction) error
	GetByID(ctx context.Context, docID id.ID) (*Transaction, error)
	Update(ctx context.Context, doc *Transaction) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	GetPayments(ctx context.Context, docID id.ID) ([]Payment, error)
	AddPayment(ctx context.Context, payment Payment) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Transaction], error)
}

// ListFilter for filtering transactions.
type ListFilter struct {
	domain.ListFilter

	Kind     *Kind
	Status   *Status
	ClientID *id.ID
	EventID  *id.ID

	// DueFrom/DueTo restrict by due date rather than issue date
	DueFrom *time.Time
	DueTo   *time.Time
}

// Service provides business operations for payables and receivables.
type Service struct {
	repo      Repository
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Transaction]
}

// NewService creates a new finance service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Transaction](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Transaction] {
	return s.hooks
}

// Create creates a new transaction.
func (s *Service) Create(ctx context.Context, doc *Transaction) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		prefix := "REC"
		if doc.Kind == KindPayable {
			prefix = "PAY"
		}
		doc.Number = documents.NextNumber(prefix, doc.Date, doc.ID)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "transaction created",
		"id", doc.ID,
		"number", doc.Number,
		"kind", doc.Kind,
		"amount", doc.Amount)
	return nil
}

// GetByID retrieves a transaction with payments.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Transaction, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.GetPayments(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	doc.Payments = payments
	return doc, nil
}

// Update updates a transaction.
func (s *Service) Update(ctx context.Context, doc *Transaction) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}
	return nil
}

// RecordPayment validates and stores a payment, refreshing the derived
// paid total and status in the same transaction.
func (s *Service) RecordPayment(ctx context.Context, docID id.ID, payment Payment) (*Transaction, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	payment.PaymentID = id.New()
	payment.TransactionID = docID

	if err := doc.ValidatePayment(payment); err != nil {
		return nil, err
	}

	doc.Payments = append(doc.Payments, payment)
	doc.RecalculatePaid()
	doc.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.AddPayment(ctx, payment); err != nil {
			return fmt.Errorf("add payment: %w", err)
		}
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "payment recorded",
		"transaction_id", docID,
		"amount", payment.Amount,
		"method", payment.Method)
	return doc, nil
}

// Cancel marks a transaction as canceled. Paid transactions stay paid.
func (s *Service) Cancel(ctx context.Context, docID id.ID) (*Transaction, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	doc.Status = StatusCanceled
	doc.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete soft-deletes a transaction.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	if _, err := s.repo.GetByID(ctx, docID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, docID, true)
	})
}

// SetDeletionMark sets or clears the deletion mark.
func (s *Service) SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error {
	return s.repo.SetDeletionMark(ctx, docID, marked)
}

// List retrieves transactions with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Transaction], error) {
	return s.repo.List(ctx, filter)
}
