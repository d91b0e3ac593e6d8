// Package report_repo provides PostgreSQL aggregate queries for reports.
package report_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"festa/internal/core/types"
	"festa/internal/domain/documents/event"
	"festa/internal/domain/reports"
	"festa/internal/infrastructure/storage/postgres"
)

// ReportQueries implements reports.Queries with aggregate SQL over the
// finance and event tables.
type ReportQueries struct {
	txm *postgres.TxManager
}

// NewReportQueries creates the report query set.
func NewReportQueries(txm *postgres.TxManager) *ReportQueries {
	return &ReportQueries{txm: txm}
}

// PaymentTotal sums payments on receivable transactions in [from, to].
func (r *ReportQueries) PaymentTotal(ctx context.Context, from, to time.Time) (types.Money, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM doc_transaction_payments p
		JOIN doc_transactions t ON t.id = p.transaction_id
		WHERE t.kind = 'receivable'
		  AND t.deletion_mark = FALSE
		  AND p.date >= $1 AND p.date <= $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}

	return total, nil
}

// OpenTotal sums the remaining amount of open transactions of a kind.
func (r *ReportQueries) OpenTotal(ctx context.Context, kind string) (types.Money, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT COALESCE(SUM(amount - paid_total), 0)
		FROM doc_transactions
		WHERE kind = $1 AND status = 'open' AND deletion_mark = FALSE
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, kind).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum open transactions: %w", err)
	}

	return total, nil
}

// OverdueCount counts open transactions past their due date.
func (r *ReportQueries) OverdueCount(ctx context.Context, now time.Time) (int, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT COUNT(*)
		FROM doc_transactions
		WHERE status = 'open' AND deletion_mark = FALSE AND due_date < $1
	`

	var count int
	if err := q.QueryRow(ctx, query, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("count overdue: %w", err)
	}

	return count, nil
}

// UpcomingEvents lists the next active bookings starting at or after from.
func (r *ReportQueries) UpcomingEvents(ctx context.Context, from time.Time, limit int) ([]*event.Event, error) {
	q := r.txm.GetQuerier(ctx)

	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM doc_events
		WHERE deletion_mark = FALSE
		  AND status IN ('scheduled', 'confirmed')
		  AND date >= $1
		ORDER BY date ASC
		LIMIT $2
	`, strings.Join(postgres.ExtractDBColumns[event.Event](), ", "))

	var events []*event.Event
	if err := pgxscan.Select(ctx, q, &events, query, from, limit); err != nil {
		return nil, fmt.Errorf("query upcoming events: %w", err)
	}

	return events, nil
}

// MonthlyRevenue returns per-month receivable payment totals for [from, to].
// Months without payments are omitted; the service zero-fills the series.
func (r *ReportQueries) MonthlyRevenue(ctx context.Context, from, to time.Time) ([]reports.MonthRevenue, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT date_trunc('month', p.date) AS month, SUM(p.amount) AS revenue
		FROM doc_transaction_payments p
		JOIN doc_transactions t ON t.id = p.transaction_id
		WHERE t.kind = 'receivable'
		  AND t.deletion_mark = FALSE
		  AND p.date >= $1 AND p.date <= $2
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query monthly revenue: %w", err)
	}
	defer rows.Close()

	var out []reports.MonthRevenue
	for rows.Next() {
		var m reports.MonthRevenue
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		out = append(out, m)
	}

	return out, nil
}

// Ensure interface compliance
var _ reports.Queries = (*ReportQueries)(nil)
