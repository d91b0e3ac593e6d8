// Package agenda turns booked events into the calendar views the front
// office lives in: month grid, week-by-hour board and year overview.
package agenda

import (
	"context"
	"time"

	"festa/pkg/logger"
	"festa/internal/domain"
	"festa/internal/domain/documents/event"
	"festa/internal/domain/schedule"
)

// maxWindowEvents caps how many events a single view query loads. A year
// of bookings for a party house sits well under this.
const maxWindowEvents = 5000

// MonthView is a month grid of events padded to full Monday weeks.
type MonthView struct {
	Anchor time.Time                    `json:"anchor"`
	Weeks  []schedule.MonthWeek[*event.Event] `json:"weeks"`
}

// WeekBoard is a week laid out by hour of day.
type WeekBoard struct {
	Anchor time.Time                      `json:"anchor"`
	View   schedule.WeekView[*event.Event] `json:"view"`
}

// YearView is the twelve mini months with their booked days.
type YearView struct {
	Anchor time.Time                        `json:"anchor"`
	Months []schedule.MiniMonth[*event.Event] `json:"months"`
}

// Service assembles calendar views from the event document store.
type Service struct {
	events event.Repository
	loc    *time.Location
}

// NewService creates the agenda service. loc is the display timezone used
// to cut day and week boundaries.
func NewService(events event.Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{events: events, loc: loc}
}

// Month builds the month grid around anchor. Canceled events stay visible
// so the secretary sees freed slots.
func (s *Service) Month(ctx context.Context, anchor time.Time) (*MonthView, error) {
	anchor = anchor.In(s.loc)
	first := schedule.StartOfMonth(anchor)
	// The grid pads to full weeks, so fetch the padding days too.
	from := schedule.StartOfWeek(first)
	to := schedule.EndOfDay(schedule.StartOfWeek(first.AddDate(0, 1, -1)).AddDate(0, 0, 6))

	items, err := s.window(ctx, from, to)
	if err != nil {
		return nil, err
	}

	view := &MonthView{
		Anchor: anchor,
		Weeks:  schedule.MonthGrid(anchor, items, s.dateOf),
	}
	logger.FromContext(ctx).Debugw("agenda month assembled",
		"anchor", anchor.Format("2006-01"),
		"events", len(items))
	return view, nil
}

// Week builds the hour-by-hour board for the week containing anchor.
func (s *Service) Week(ctx context.Context, anchor time.Time) (*WeekBoard, error) {
	anchor = anchor.In(s.loc)
	from := schedule.StartOfWeek(anchor)
	to := schedule.EndOfDay(from.AddDate(0, 0, 6))

	items, err := s.window(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &WeekBoard{
		Anchor: anchor,
		View:   schedule.WeekGrid(anchor, items, s.dateOf),
	}, nil
}

// Year builds the twelve mini months for anchor's year.
func (s *Service) Year(ctx context.Context, anchor time.Time) (*YearView, error) {
	anchor = anchor.In(s.loc)
	from := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, s.loc)
	to := schedule.EndOfDay(time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, s.loc))

	items, err := s.window(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &YearView{
		Anchor: anchor,
		Months: schedule.YearOverview(anchor, items, s.dateOf),
	}, nil
}

// Shift moves the anchor by delta steps of the given granularity.
func (s *Service) Shift(anchor time.Time, g schedule.Granularity, delta int) time.Time {
	return schedule.ShiftAnchor(anchor.In(s.loc), g, delta)
}

// EventsBetween lists events in [from, to] ordered by start time. Used by
// the list view and the .ics export.
func (s *Service) EventsBetween(ctx context.Context, from, to time.Time) ([]*event.Event, error) {
	return s.window(ctx, from, to)
}

func (s *Service) window(ctx context.Context, from, to time.Time) ([]*event.Event, error) {
	res, err := s.events.List(ctx, event.ListFilter{
		ListFilter: domain.ListFilter{
			DateFrom: &from,
			DateTo:   &to,
			OrderBy:  "date",
			Limit:    maxWindowEvents,
		},
	})
	if err != nil {
		return nil, err
	}
	// Re-express dates in the display timezone so day buckets are cut
	// on local midnights, not UTC ones.
	for _, e := range res.Items {
		e.Date = e.Date.In(s.loc)
		if e.EndsAt != nil {
			t := e.EndsAt.In(s.loc)
			e.EndsAt = &t
		}
	}
	// The SQL range compares UTC instants; re-check against the local
	// window so boundary events land in the right view.
	sel := schedule.WithCustomRange(&from, &to)
	return schedule.FilterByRange(res.Items, s.dateOf, sel), nil
}

func (s *Service) dateOf(e *event.Event) any {
	return e.Date.In(s.loc)
}
