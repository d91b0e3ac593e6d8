package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/core/types"
	"festa/internal/domain/documents/event"
)

type fakeQueries struct {
	paymentTotal types.Money
	openTotals   map[string]types.Money
	overdue      int
	upcoming     []*event.Event
	monthly      []MonthRevenue
}

func (q *fakeQueries) PaymentTotal(ctx context.Context, from, to time.Time) (types.Money, error) {
	return q.paymentTotal, nil
}

func (q *fakeQueries) OpenTotal(ctx context.Context, kind string) (types.Money, error) {
	return q.openTotals[kind], nil
}

func (q *fakeQueries) OverdueCount(ctx context.Context, now time.Time) (int, error) {
	return q.overdue, nil
}

func (q *fakeQueries) UpcomingEvents(ctx context.Context, from time.Time, limit int) ([]*event.Event, error) {
	return q.upcoming, nil
}

func (q *fakeQueries) MonthlyRevenue(ctx context.Context, from, to time.Time) ([]MonthRevenue, error) {
	return q.monthly, nil
}

func TestDashboardAggregates(t *testing.T) {
	q := &fakeQueries{
		paymentTotal: types.MustMoney("4500.00"),
		openTotals: map[string]types.Money{
			"receivable": types.MustMoney("1200.50"),
			"payable":    types.MustMoney("300.00"),
		},
		overdue: 2,
	}
	svc := NewService(q)

	dash, err := svc.Dashboard(context.Background(), time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, dash.MonthRevenue.Equal(types.MustMoney("4500.00")))
	assert.True(t, dash.OpenReceivables.Equal(types.MustMoney("1200.50")))
	assert.True(t, dash.OpenPayables.Equal(types.MustMoney("300.00")))
	assert.Equal(t, 2, dash.OverdueCount)
	assert.NotNil(t, dash.UpcomingEvents)
	assert.Empty(t, dash.UpcomingEvents)
}

func TestMonthlyRevenueZeroFills(t *testing.T) {
	q := &fakeQueries{
		monthly: []MonthRevenue{
			{Month: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Revenue: types.MustMoney("1000")},
			{Month: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Revenue: types.MustMoney("2500")},
		},
	}
	svc := NewService(q)

	series, err := svc.MonthlyRevenue(context.Background(), time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), 6)
	require.NoError(t, err)
	require.Len(t, series, 6)

	assert.Equal(t, time.January, series[0].Month.Month())
	assert.True(t, series[0].Revenue.IsZero())
	assert.True(t, series[3].Revenue.Equal(types.MustMoney("1000")))
	assert.True(t, series[4].Revenue.IsZero())
	assert.True(t, series[5].Revenue.Equal(types.MustMoney("2500")))
}

func TestMonthlyRevenueDefaultsToTwelve(t *testing.T) {
	svc := NewService(&fakeQueries{})
	series, err := svc.MonthlyRevenue(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	assert.Len(t, series, 12)
	assert.Equal(t, time.July, series[0].Month.Month())
	assert.Equal(t, 2023, series[0].Month.Year())
}
