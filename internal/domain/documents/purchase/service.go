// Package purchase provides the Purchase document service.
package purchase

import (
	"context"
	"fmt"

	"festa/internal/core/id"
	"festa/internal/core/tx"
	"festa/internal/domain"
	"festa/internal/domain/documents"
	"festa/pkg/logger"
)

// Repository defines operations for purchase documents.
type Repository interface {
	Create(ctx context.Context, doc *Purchase) error
	GetByID(ctx context.Context, docID id.ID) (*Purchase, error)
	Update(ctx context.Context, doc *Purchase) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error)
}

// ListFilter for filtering purchases.
type ListFilter struct {
	domain.ListFilter

	Status *Status
}

// Service provides business operations for purchases.
type Service struct {
	repo      Repository
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Purchase]
}

// NewService creates a new purchase service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Purchase](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Purchase] {
	return s.hooks
}

// Create creates a new purchase.
func (s *Service) Create(ctx context.Context, doc *Purchase) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	doc.RecalculateTotal()
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		doc.Number = documents.NextNumber("PUR", doc.Date, doc.ID)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "purchase created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves a purchase with its lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Purchase, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines
	return doc, nil
}

// Update updates a purchase.
func (s *Service) Update(ctx context.Context, doc *Purchase) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	doc.RecalculateTotal()
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}
	return nil
}

// Delete soft-deletes a purchase.
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

// List retrieves purchases with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error) {
	return s.repo.List(ctx, filter)
}
