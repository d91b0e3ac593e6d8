package finance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/core/types"
	"festa/internal/domain"
)

type memRepo struct {
	docs     map[id.ID]*Transaction
	payments map[id.ID][]Payment
}

func newMemRepo() *memRepo {
	return &memRepo{
		docs:     map[id.ID]*Transaction{},
		payments: map[id.ID][]Payment{},
	}
}

func (r *memRepo) Create(ctx context.Context, doc *Transaction) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, docID id.ID) (*Transaction, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("transaction", docID.String())
	}
	cp := *doc
	return &cp, nil
}

func (r *memRepo) Update(ctx context.Context, doc *Transaction) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return apperror.NewNotFound("transaction", doc.ID.String())
	}
	r.docs[doc.ID] = doc
	return nil
}

func (r *memRepo) SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error {
	doc, ok := r.docs[docID]
	if !ok {
		return apperror.NewNotFound("transaction", docID.String())
	}
	doc.DeletionMark = marked
	return nil
}

func (r *memRepo) GetPayments(ctx context.Context, docID id.ID) ([]Payment, error) {
	return r.payments[docID], nil
}

func (r *memRepo) AddPayment(ctx context.Context, payment Payment) error {
	r.payments[payment.TransactionID] = append(r.payments[payment.TransactionID], payment)
	return nil
}

func (r *memRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Transaction], error) {
	out := make([]*Transaction, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return domain.ListResult[*Transaction]{Items: out, TotalCount: int64(len(out))}, nil
}

type noopTx struct{}

func (noopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*Service, *memRepo) {
	repo := newMemRepo()
	return NewService(repo, noopTx{}), repo
}

func createOpen(t *testing.T, svc *Service, kind Kind, amount string) *Transaction {
	t.Helper()
	doc := New(kind, "Buffet infantil", time.Now().Add(72*time.Hour), types.MustMoney(amount))
	doc.Date = time.Now()
	require.NoError(t, svc.Create(context.Background(), doc))
	return doc
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("assigns kind-specific number", func(t *testing.T) {
		rec := createOpen(t, svc, KindReceivable, "1500.00")
		assert.Contains(t, rec.Number, "REC-")

		pay := createOpen(t, svc, KindPayable, "300.00")
		assert.Contains(t, pay.Number, "PAY-")
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		doc := New(KindReceivable, "Ajuste", time.Now(), types.Zero())
		doc.Date = time.Now()
		err := svc.Create(ctx, doc)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		doc := New(KindPayable, "", time.Now(), types.MustMoney("10.00"))
		doc.Date = time.Now()
		err := svc.Create(ctx, doc)
		assert.Error(t, err)
	})
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("partial payment keeps transaction open", func(t *testing.T) {
		svc, _ := newTestService()
		doc := createOpen(t, svc, KindReceivable, "1000.00")

		updated, err := svc.RecordPayment(ctx, doc.ID, Payment{
			Amount: types.MustMoney("400.00"),
			Method: MethodPix,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusOpen, updated.Status)
		assert.Equal(t, "600", updated.Remaining().String())
	})

	t.Run("full payment marks transaction paid", func(t *testing.T) {
		svc, _ := newTestService()
		doc := createOpen(t, svc, KindReceivable, "1000.00")

		_, err := svc.RecordPayment(ctx, doc.ID, Payment{
			Amount: types.MustMoney("600.00"),
			Method: MethodCash,
		})
		require.NoError(t, err)

		updated, err := svc.RecordPayment(ctx, doc.ID, Payment{
			Amount: types.MustMoney("400.00"),
			Method: MethodCard,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, updated.Status)
		assert.True(t, updated.Remaining().IsZero())
	})

	t.Run("overpayment is rejected", func(t *testing.T) {
		svc, _ := newTestService()
		doc := createOpen(t, svc, KindReceivable, "500.00")

		_, err := svc.RecordPayment(ctx, doc.ID, Payment{
			Amount: types.MustMoney("500.01"),
			Method: MethodPix,
		})
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeOverpayment, appErr.Code)
	})

	t.Run("invalid method is rejected", func(t *testing.T) {
		svc, _ := newTestService()
		doc := createOpen(t, svc, KindPayable, "100.00")

		_, err := svc.RecordPayment(ctx, doc.ID, Payment{
			Amount: types.MustMoney("100.00"),
			Method: PaymentMethod("check"),
		})
		assert.Error(t, err)
	})

	t.Run("canceled transaction refuses payments", func(t *testing.T) {
		svc, _ := newTestService()
		doc := createOpen(t, svc, KindReceivable, "200.00")

		_, err := svc.Cancel(ctx, doc.ID)
		require.NoError(t, err)

		_, err = svc.RecordPayment(ctx, doc.ID, Payment{
			Amount: types.MustMoney("200.00"),
			Method: MethodPix,
		})
		assert.Error(t, err)
	})
}

func TestCancel(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc := createOpen(t, svc, KindPayable, "750.00")
	canceled, err := svc.Cancel(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, canceled.Status)
}

func TestIsOverdue(t *testing.T) {
	now := time.Now()

	doc := New(KindReceivable, "Saldo final", now.Add(-24*time.Hour), types.MustMoney("100.00"))
	assert.True(t, doc.IsOverdue(now))

	doc.Status = StatusPaid
	assert.False(t, doc.IsOverdue(now))

	future := New(KindReceivable, "Entrada", now.Add(24*time.Hour), types.MustMoney("100.00"))
	assert.False(t, future.IsOverdue(now))
}
