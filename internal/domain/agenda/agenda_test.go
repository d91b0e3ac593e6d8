package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/core/entity"
	"festa/internal/core/id"
	"festa/internal/domain"
	"festa/internal/domain/documents/event"
	"festa/internal/domain/schedule"
)

type fakeEventRepo struct {
	events []*event.Event
	gotFilter event.ListFilter
}

func (r *fakeEventRepo) Create(ctx context.Context, doc *event.Event) error  { return nil }
func (r *fakeEventRepo) GetByID(ctx context.Context, docID id.ID) (*event.Event, error) {
	return nil, nil
}
func (r *fakeEventRepo) GetByNumber(ctx context.Context, number string) (*event.Event, error) {
	return nil, nil
}
func (r *fakeEventRepo) Update(ctx context.Context, doc *event.Event) error { return nil }
func (r *fakeEventRepo) Delete(ctx context.Context, docID id.ID) error      { return nil }
func (r *fakeEventRepo) SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error {
	return nil
}
func (r *fakeEventRepo) GetLines(ctx context.Context, docID id.ID) ([]event.Line, error) {
	return nil, nil
}
func (r *fakeEventRepo) SaveLines(ctx context.Context, docID id.ID, lines []event.Line) error {
	return nil
}

func (r *fakeEventRepo) List(ctx context.Context, f event.ListFilter) (domain.ListResult[*event.Event], error) {
	r.gotFilter = f
	out := make([]*event.Event, 0, len(r.events))
	for _, e := range r.events {
		if f.DateFrom != nil && e.Date.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && e.Date.After(*f.DateTo) {
			continue
		}
		out = append(out, e)
	}
	return domain.ListResult[*event.Event]{Items: out, TotalCount: int64(len(out))}, nil
}

func makeEvent(t *testing.T, number string, start time.Time, status event.Status) *event.Event {
	t.Helper()
	e := &event.Event{
		Document: entity.Document{
			BaseDocument: entity.BaseDocument{
				BaseEntity: entity.BaseEntity{ID: id.New()},
				CreatedAt:  start.Add(-48 * time.Hour),
				UpdatedAt:  start.Add(-24 * time.Hour),
			},
			Number:       number,
			Date:         start,
		},
		ClientID:        id.New(),
		DurationMinutes: 120,
		Status:          status,
	}
	return e
}

func TestMonthViewBucketsEvents(t *testing.T) {
	loc := time.UTC
	repo := &fakeEventRepo{events: []*event.Event{
		makeEvent(t, "EVT-1", time.Date(2024, 6, 15, 14, 0, 0, 0, loc), event.StatusConfirmed),
		makeEvent(t, "EVT-2", time.Date(2024, 6, 15, 18, 0, 0, 0, loc), event.StatusScheduled),
		// Padding day from May shown on the June grid.
		makeEvent(t, "EVT-3", time.Date(2024, 5, 28, 10, 0, 0, 0, loc), event.StatusConfirmed),
	}}
	svc := NewService(repo, loc)

	view, err := svc.Month(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	require.NotEmpty(t, view.Weeks)

	var on15, on28 []*event.Event
	for _, week := range view.Weeks {
		for _, cell := range week {
			switch {
			case cell.Day.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, loc)):
				on15 = cell.Records
			case cell.Day.Equal(time.Date(2024, 5, 28, 0, 0, 0, 0, loc)):
				on28 = cell.Records
			}
		}
	}
	assert.Len(t, on15, 2)
	require.Len(t, on28, 1)
	assert.Equal(t, "EVT-3", on28[0].Number)

	// The repo window covers the padded grid, not the bare month.
	require.NotNil(t, repo.gotFilter.DateFrom)
	assert.Equal(t, time.Date(2024, 5, 27, 0, 0, 0, 0, loc), *repo.gotFilter.DateFrom)
}

func TestWeekBoardPlacesByHour(t *testing.T) {
	loc := time.UTC
	repo := &fakeEventRepo{events: []*event.Event{
		makeEvent(t, "EVT-1", time.Date(2024, 6, 12, 14, 30, 0, 0, loc), event.StatusConfirmed),
	}}
	svc := NewService(repo, loc)

	board, err := svc.Week(context.Background(), time.Date(2024, 6, 12, 9, 0, 0, 0, loc))
	require.NoError(t, err)

	// June 12 2024 is a Wednesday, index 2 in a Monday-start week.
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), board.View.Start)
	require.Len(t, board.View.Days[2][14].Records, 1)
	assert.Equal(t, "EVT-1", board.View.Days[2][14].Records[0].Number)
}

func TestYearViewTwelveMonths(t *testing.T) {
	loc := time.UTC
	repo := &fakeEventRepo{events: []*event.Event{
		makeEvent(t, "EVT-1", time.Date(2024, 3, 3, 10, 0, 0, 0, loc), event.StatusConfirmed),
		makeEvent(t, "EVT-2", time.Date(2024, 11, 20, 10, 0, 0, 0, loc), event.StatusScheduled),
	}}
	svc := NewService(repo, loc)

	view, err := svc.Year(context.Background(), time.Date(2024, 1, 1, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Len(t, view.Months, 12)
	assert.Equal(t, time.March, view.Months[2].Month.Month())
	require.Len(t, view.Months[2].Days, 1)
	assert.Len(t, view.Months[10].Days, 1)
}

func TestShiftDelegates(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, time.UTC)
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.July, svc.Shift(anchor, schedule.GranularityMonth, 1).Month())
	assert.Equal(t, 8, svc.Shift(anchor, schedule.GranularityWeek, -1).Day())
}

func TestExportICS(t *testing.T) {
	loc := time.UTC
	confirmed := makeEvent(t, "EVT-20240615-00000001", time.Date(2024, 6, 15, 14, 0, 0, 0, loc), event.StatusConfirmed)
	confirmed.Lines = []event.Line{{Description: "Mickey"}, {Description: "Minnie"}}
	confirmed.Street = "Rua das Flores"
	confirmed.City = "Campinas"
	canceled := makeEvent(t, "EVT-20240616-00000002", time.Date(2024, 6, 16, 10, 0, 0, 0, loc), event.StatusCanceled)

	out := ExportICS([]*event.Event{confirmed, canceled}, time.Date(2024, 6, 1, 0, 0, 0, 0, loc))

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "EVT-20240615-00000001: Mickey")
	assert.Contains(t, out, "STATUS:CONFIRMED")
	assert.Contains(t, out, "STATUS:CANCELLED")
	assert.Contains(t, out, "DTSTART:20240615T140000Z")
	assert.Contains(t, out, "DTEND:20240615T160000Z")
	assert.Contains(t, out, "Rua das Flores")
}
