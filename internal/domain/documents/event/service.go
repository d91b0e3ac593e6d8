// Package event provides the Event document service.
package event

import (
	"context"
	"fmt"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/core/tx"
	"festa/internal/domain"
	"festa/internal/domain/documents"
	"festa/pkg/logger"
)

// Service provides business operations for event bookings.
type Service struct {
	repo      Repository
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Event]
}

// NewService creates a new event service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Event](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Event] {
	return s.hooks
}

// Create creates a new event booking.
func (s *Service) Create(ctx context.Context, doc *Event) error {
	// Run before-create hooks (enrichment, validation, etc.)
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		doc.Number = documents.NextNumber("EVT", doc.Date, doc.ID)
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

	logger.Info(ctx, "event created",
		"id", doc.ID,
		"number", doc.Number,
		"client_id", doc.ClientID)

	return nil
}

// GetByID retrieves an event with its lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Event, error) {
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

// Update updates an event booking.
func (s *Service) Update(ctx context.Context, doc *Event) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

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

// SetStatus moves the booking through its lifecycle.
func (s *Service) SetStatus(ctx context.Context, docID id.ID, next Status) (*Event, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if !doc.CanTransitionTo(next) {
		return nil, apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			fmt.Sprintf("cannot change status from %s to %s", doc.Status, next),
		).WithDetail("event_id", docID.String())
	}

	doc.Status = next
	doc.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete soft-deletes an event booking.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, docID, true)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterDelete(ctx, doc); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "error", err)
	}
	return nil
}

// SetDeletionMark sets or clears the deletion mark.
func (s *Service) SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error {
	return s.repo.SetDeletionMark(ctx, docID, marked)
}

// List retrieves events with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Event], error) {
	return s.repo.List(ctx, filter)
}
