package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/domain"
	"festa/internal/domain/documents/timerecord"
	"festa/internal/infrastructure/storage/postgres"
)

const timeRecordsTable = "doc_time_records"

// TimeRecordRepo implements timerecord.Repository.
type TimeRecordRepo struct {
	*BaseDocumentRepo[*timerecord.TimeRecord]
}

// NewTimeRecordRepo creates a new time record repository.
func NewTimeRecordRepo(txm *postgres.TxManager) *TimeRecordRepo {
	return &TimeRecordRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*timerecord.TimeRecord](
			txm,
			timeRecordsTable,
			postgres.ExtractDBColumns[timerecord.TimeRecord](),
			func() *timerecord.TimeRecord { return &timerecord.TimeRecord{} },
		),
	}
}

// FindOpenByEmployee returns the employee's running shift, if any.
func (r *TimeRecordRepo) FindOpenByEmployee(ctx context.Context, employeeID id.ID) (*timerecord.TimeRecord, error) {
	record := &timerecord.TimeRecord{}

	q := r.baseSelect().
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"clock_out": nil}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("date DESC").
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), record, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("time_record", employeeID.String())
		}
		return nil, fmt.Errorf("find open record: %w", err)
	}

	return record, nil
}

// List retrieves time records with filtering.
func (r *TimeRecordRepo) List(ctx context.Context, filter timerecord.ListFilter) (domain.ListResult[*timerecord.TimeRecord], error) {
	q := r.applyListFilter(r.baseSelect(), filter.ListFilter)

	if filter.EmployeeID != nil {
		q = q.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.OpenOnly {
		q = q.Where(squirrel.Eq{"clock_out": nil})
	}
	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + filter.Search + "%"})
	}

	return r.finishList(ctx, q, filter.ListFilter)
}
