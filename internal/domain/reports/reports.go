// Package reports assembles the management numbers shown on the dashboard.
package reports

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"festa/internal/core/types"
	"festa/internal/domain/documents/event"
	"festa/internal/domain/schedule"
)

// MonthRevenue is one point of the revenue series.
type MonthRevenue struct {
	Month   time.Time   `json:"month"` // first day of the month
	Revenue types.Money `json:"revenue"`
}

// Dashboard is the front page summary.
type Dashboard struct {
	// MonthRevenue is the payment total received in the anchor month.
	MonthRevenue types.Money `json:"monthRevenue"`

	// OpenReceivables and OpenPayables are remaining (not paid) totals.
	OpenReceivables types.Money `json:"openReceivables"`
	OpenPayables    types.Money `json:"openPayables"`

	// OverdueCount is how many open transactions are past due.
	OverdueCount int `json:"overdueCount"`

	// UpcomingEvents are the next scheduled or confirmed bookings.
	UpcomingEvents []*event.Event `json:"upcomingEvents"`
}

// Queries is the read side implemented by the storage layer.
type Queries interface {
	// PaymentTotal sums payments on receivable transactions in [from, to].
	PaymentTotal(ctx context.Context, from, to time.Time) (types.Money, error)

	// OpenTotal sums the remaining amount of open transactions of a kind.
	OpenTotal(ctx context.Context, kind string) (types.Money, error)

	// OverdueCount counts open transactions with a due date before now.
	OverdueCount(ctx context.Context, now time.Time) (int, error)

	// UpcomingEvents lists the next active bookings starting at or after
	// from, ordered by start time.
	UpcomingEvents(ctx context.Context, from time.Time, limit int) ([]*event.Event, error)

	// MonthlyRevenue returns per-month payment totals for months in
	// [from, to], oldest first. Months without payments are omitted.
	MonthlyRevenue(ctx context.Context, from, to time.Time) ([]MonthRevenue, error)
}

// Service computes report views.
type Service struct {
	queries       Queries
	upcomingLimit int
}

// NewService creates a reports service.
func NewService(queries Queries) *Service {
	return &Service{queries: queries, upcomingLimit: 10}
}

// Dashboard assembles the summary for the month containing now. The four
// aggregates are independent queries, so they run concurrently.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	from := schedule.StartOfMonth(now)
	to := schedule.EndOfDay(from.AddDate(0, 1, -1))

	var out Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.queries.PaymentTotal(gctx, from, to)
		if err != nil {
			return err
		}
		out.MonthRevenue = total
		return nil
	})
	g.Go(func() error {
		total, err := s.queries.OpenTotal(gctx, "receivable")
		if err != nil {
			return err
		}
		out.OpenReceivables = total
		return nil
	})
	g.Go(func() error {
		total, err := s.queries.OpenTotal(gctx, "payable")
		if err != nil {
			return err
		}
		out.OpenPayables = total
		return nil
	})
	g.Go(func() error {
		n, err := s.queries.OverdueCount(gctx, now)
		if err != nil {
			return err
		}
		out.OverdueCount = n
		return nil
	})
	g.Go(func() error {
		events, err := s.queries.UpcomingEvents(gctx, now, s.upcomingLimit)
		if err != nil {
			return err
		}
		out.UpcomingEvents = events
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if out.UpcomingEvents == nil {
		out.UpcomingEvents = []*event.Event{}
	}
	return &out, nil
}

// MonthlyRevenue returns the last months of revenue ending with the month
// of now, zero-filled so charts get a continuous series.
func (s *Service) MonthlyRevenue(ctx context.Context, now time.Time, months int) ([]MonthRevenue, error) {
	if months <= 0 {
		months = 12
	}
	last := schedule.StartOfMonth(now)
	first := last.AddDate(0, -(months - 1), 0)
	to := schedule.EndOfDay(last.AddDate(0, 1, -1))

	rows, err := s.queries.MonthlyRevenue(ctx, first, to)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]types.Money, len(rows))
	for _, r := range rows {
		byMonth[r.Month.Format("2006-01")] = r.Revenue
	}

	series := make([]MonthRevenue, 0, months)
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		revenue, ok := byMonth[m.Format("2006-01")]
		if !ok {
			revenue = types.Zero()
		}
		series = append(series, MonthRevenue{Month: m, Revenue: revenue})
	}
	return series, nil
}
