package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"festa/internal/core/id"
	"festa/internal/domain"
	"festa/internal/domain/documents/finance"
	"festa/internal/infrastructure/storage/postgres"
)

const (
	transactionsTable = "doc_transactions"
	paymentsTable     = "doc_transaction_payments"
)

// FinanceRepo implements finance.Repository.
type FinanceRepo struct {
	*BaseDocumentRepo[*finance.Transaction]
}

// NewFinanceRepo creates a new financial transaction repository.
func NewFinanceRepo(txm *postgres.TxManager) *FinanceRepo {
	return &FinanceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*finance.Transaction](
			txm,
			transactionsTable,
			postgres.ExtractDBColumns[finance.Transaction](),
			func() *finance.Transaction { return &finance.Transaction{} },
		),
	}
}

// GetPayments retrieves payments of a transaction, oldest first.
func (r *FinanceRepo) GetPayments(ctx context.Context, docID id.ID) ([]finance.Payment, error) {
	q := r.Builder().
		Select("payment_id", "transaction_id", "date", "amount", "method", "note").
		From(paymentsTable).
		Where(squirrel.Eq{"transaction_id": docID}).
		OrderBy("date", "payment_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var payments []finance.Payment
	if err := pgxscan.Select(ctx, r.Querier(ctx), &payments, sql, args...); err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return payments, nil
}

// AddPayment appends a payment row. Payments are immutable once recorded.
func (r *FinanceRepo) AddPayment(ctx context.Context, payment finance.Payment) error {
	q := r.Builder().
		Insert(paymentsTable).
		Columns("payment_id", "transaction_id", "date", "amount", "method", "note").
		Values(payment.PaymentID, payment.TransactionID, payment.Date, payment.Amount, payment.Method, payment.Note)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert payment: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

// List retrieves transactions with filtering.
func (r *FinanceRepo) List(ctx context.Context, filter finance.ListFilter) (domain.ListResult[*finance.Transaction], error) {
	q := r.applyListFilter(r.baseSelect(), filter.ListFilter)

	if filter.Kind != nil {
		q = q.Where(squirrel.Eq{"kind": *filter.Kind})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.EventID != nil {
		q = q.Where(squirrel.Eq{"event_id": *filter.EventID})
	}
	if filter.DueFrom != nil {
		q = q.Where(squirrel.GtOrEq{"due_date": *filter.DueFrom})
	}
	if filter.DueTo != nil {
		q = q.Where(squirrel.LtOrEq{"due_date": *filter.DueTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"counterparty_name": pattern},
		})
	}

	return r.finishList(ctx, q, filter.ListFilter)
}
