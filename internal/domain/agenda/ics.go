package agenda

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"festa/internal/domain/documents/event"
)

// prodID identifies this application in exported calendars.
const prodID = "-//Festa//Agenda//PT-BR"

// ExportICS serializes events into an iCalendar feed that secretaries can
// subscribe to from Google Calendar or Outlook. Canceled events are
// exported with STATUS:CANCELLED so subscribed calendars drop them.
func ExportICS(events []*event.Event, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetName("Agenda de Eventos")

	for _, e := range events {
		ve := cal.AddEvent(fmt.Sprintf("%s@festa", e.ID))
		ve.SetDtStampTime(now.UTC())
		ve.SetCreatedTime(e.CreatedAt.UTC())
		ve.SetModifiedAt(e.UpdatedAt.UTC())
		ve.SetStartAt(e.Date.UTC())
		ve.SetEndAt(e.EndTime().UTC())
		ve.SetSummary(summaryOf(e))
		if loc := e.FullAddress(); loc != "" {
			ve.SetLocation(loc)
		}
		if desc := descriptionOf(e); desc != "" {
			ve.SetDescription(desc)
		}
		switch e.Status {
		case event.StatusCanceled:
			ve.SetStatus(ical.ObjectStatusCancelled)
		case event.StatusConfirmed, event.StatusDone:
			ve.SetStatus(ical.ObjectStatusConfirmed)
		default:
			ve.SetStatus(ical.ObjectStatusTentative)
		}
	}

	return cal.Serialize()
}

func summaryOf(e *event.Event) string {
	if len(e.Lines) == 0 {
		return e.Number
	}
	names := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		if l.Description != "" {
			names = append(names, l.Description)
		}
	}
	if len(names) == 0 {
		return e.Number
	}
	return fmt.Sprintf("%s: %s", e.Number, strings.Join(names, ", "))
}

func descriptionOf(e *event.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Evento %s", e.Number)
	if e.Comment != "" {
		fmt.Fprintf(&b, "\n%s", e.Comment)
	}
	return b.String()
}
