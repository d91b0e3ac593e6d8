// Package event provides the Event document repository.
package event

import (
	"context"

	"festa/internal/core/id"
	"festa/internal/domain"
)

// Repository defines operations for event documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Event) error
	GetByID(ctx context.Context, docID id.ID) (*Event, error)
	GetByNumber(ctx context.Context, number string) (*Event, error)
	Update(ctx context.Context, doc *Event) error
	Delete(ctx context.Context, docID id.ID) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Event], error)
}

// ListFilter for filtering events.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	ClientID   *id.ID
	CategoryID *id.ID
	Status     *Status
}
