package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"festa/internal/core/id"
	"festa/internal/domain"
	"festa/internal/domain/documents/event"
	"festa/internal/infrastructure/storage/postgres"
)

const (
	eventsTable     = "doc_events"
	eventLinesTable = "doc_event_lines"
)

// EventRepo implements event.Repository.
type EventRepo struct {
	*BaseDocumentRepo[*event.Event]
}

// NewEventRepo creates a new event repository.
func NewEventRepo(txm *postgres.TxManager) *EventRepo {
	return &EventRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*event.Event](
			txm,
			eventsTable,
			postgres.ExtractDBColumns[event.Event](),
			func() *event.Event { return &event.Event{} },
		),
	}
}

// GetLines retrieves the booked characters and packages of an event.
func (r *EventRepo) GetLines(ctx context.Context, docID id.ID) ([]event.Line, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "kind", "description",
			"inventory_item_id", "employee_id", "fee",
		).
		From(eventLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []event.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines replaces the event's lines (delete existing + insert new).
func (r *EventRepo) SaveLines(ctx context.Context, docID id.ID, lines []event.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + eventLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(eventLinesTable).
		Columns(
			"line_id", "document_id", "line_no", "kind", "description",
			"inventory_item_id", "employee_id", "fee",
		)

	for _, line := range lines {
		q = q.Values(
			line.LineID, docID, line.LineNo, line.Kind, line.Description,
			line.InventoryItemID, line.EmployeeID, line.Fee,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// List retrieves events with filtering.
func (r *EventRepo) List(ctx context.Context, filter event.ListFilter) (domain.ListResult[*event.Event], error) {
	q := r.applyListFilter(r.baseSelect(), filter.ListFilter)

	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.CategoryID != nil {
		q = q.Where(squirrel.Eq{"category_id": *filter.CategoryID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"comment": pattern},
		})
	}

	return r.finishList(ctx, q, filter.ListFilter)
}
