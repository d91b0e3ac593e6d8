package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"festa/internal/core/id"
	"festa/internal/domain"
	"festa/internal/domain/documents/purchase"
	"festa/internal/infrastructure/storage/postgres"
)

const (
	purchasesTable     = "doc_purchases"
	purchaseLinesTable = "doc_purchase_lines"
)

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Purchase]
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txm *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*purchase.Purchase](
			txm,
			purchasesTable,
			postgres.ExtractDBColumns[purchase.Purchase](),
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}

// GetLines retrieves lines for a purchase.
func (r *PurchaseRepo) GetLines(ctx context.Context, docID id.ID) ([]purchase.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "description", "quantity", "unit_price", "amount").
		From(purchaseLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []purchase.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines replaces the purchase's lines (delete existing + insert new).
func (r *PurchaseRepo) SaveLines(ctx context.Context, docID id.ID, lines []purchase.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + purchaseLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(purchaseLinesTable).
		Columns("line_id", "document_id", "line_no", "description", "quantity", "unit_price", "amount")

	for _, line := range lines {
		q = q.Values(
			line.LineID, docID, line.LineNo, line.Description,
			line.Quantity, line.UnitPrice, line.Amount,
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

// List retrieves purchases with filtering.
func (r *PurchaseRepo) List(ctx context.Context, filter purchase.ListFilter) (domain.ListResult[*purchase.Purchase], error) {
	q := r.applyListFilter(r.baseSelect(), filter.ListFilter)

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"supplier_name": pattern},
		})
	}

	return r.finishList(ctx, q, filter.ListFilter)
}
