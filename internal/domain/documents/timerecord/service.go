// Package timerecord provides the TimeRecord document service.
package timerecord

import (
	"context"
	"time"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/core/tx"
	"festa/internal/domain"
	"festa/internal/domain/documents"
	"festa/pkg/logger"
)

// Repository defines operations for time records.
type Repository interface {
	Create(ctx context.Context, doc *TimeRecord) error
	GetByID(ctx context.Context, docID id.ID) (*TimeRecord, error)
	Update(ctx context.Context, doc *TimeRecord) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	// FindOpenByEmployee returns the employee's running shift, if any.
	FindOpenByEmployee(ctx context.Context, employeeID id.ID) (*TimeRecord, error)

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*TimeRecord], error)
}

// ListFilter for filtering time records.
type ListFilter struct {
	domain.ListFilter

	EmployeeID *id.ID
	OpenOnly   bool
}

// Service provides clock-in/clock-out business operations.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new time record service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// ClockIn opens a shift. An employee can have only one open shift.
func (s *Service) ClockIn(ctx context.Context, employeeID id.ID, at time.Time) (*TimeRecord, error) {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	open, err := s.repo.FindOpenByEmployee(ctx, employeeID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	if open != nil {
		return nil, apperror.NewClockState(employeeID.String(), "employee already has an open shift").
			WithDetail("open_record_id", open.ID.String())
	}

	doc := New(employeeID, at)
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}
	doc.Number = documents.NextNumber("TRC", doc.Date, doc.ID)

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "shift opened", "employee_id", employeeID, "record_id", doc.ID)
	return doc, nil
}

// ClockOut closes a shift by record ID.
func (s *Service) ClockOut(ctx context.Context, recordID id.ID, at time.Time) (*TimeRecord, error) {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	doc, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := doc.Close(at); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "shift closed",
		"employee_id", doc.EmployeeID,
		"record_id", doc.ID,
		"worked", doc.Worked(at).String())
	return doc, nil
}

// GetByID retrieves a time record.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*TimeRecord, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update edits a record (manual corrections by the office).
func (s *Service) Update(ctx context.Context, doc *TimeRecord) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// Delete soft-deletes a record.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	if _, err := s.repo.GetByID(ctx, docID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, docID, true)
	})
}

// List retrieves time records with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*TimeRecord], error) {
	return s.repo.List(ctx, filter)
}
