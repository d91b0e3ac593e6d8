// Package event provides the Event document: a booking of characters and
// packages for a client party, the record everything else hangs off.
package event

import (
	"context"
	"time"

	"festa/internal/core/apperror"
	"festa/internal/core/entity"
	"festa/internal/core/id"
	"festa/internal/core/types"
)

// Status tracks the booking through its life.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusDone      Status = "done"
	StatusCanceled  Status = "canceled"
)

// Event represents a booked party. Document.Date is the start instant of
// the event (date and time).
type Event struct {
	entity.Document
	entity.AddressAware // event venue

	// ClientID references the client catalog
	ClientID id.ID `db:"client_id" json:"clientId"`

	// CategoryID references an event_category reference value
	CategoryID *id.ID `db:"category_id" json:"categoryId,omitempty"`

	// DurationMinutes is used to derive the end time when EndsAt is absent
	DurationMinutes int `db:"duration_minutes" json:"durationMinutes"`

	// EndsAt is the explicit end time, overriding the duration
	EndsAt *time.Time `db:"ends_at" json:"endsAt,omitempty"`

	Status Status `db:"status" json:"status"`

	// ContractValue is the agreed total for the event
	ContractValue types.Money `db:"contract_value" json:"contractValue"`

	// EntryPayment is the upfront part of the contract value
	EntryPayment types.Money `db:"entry_payment" json:"entryPayment"`

	// InstallmentCount splits the remainder; values below 1 mean a single installment
	InstallmentCount int `db:"installment_count" json:"installmentCount"`

	// Table part: booked characters and packages
	Lines []Line `db:"-" json:"lines"`
}

// LineKind distinguishes what was booked on a line.
type LineKind string

const (
	LineCharacter LineKind = "character"
	LinePackage   LineKind = "package"
)

// Line represents one booked character or package.
type Line struct {
	LineID id.ID    `db:"line_id" json:"lineId"`
	LineNo int      `db:"line_no" json:"lineNo"`
	Kind   LineKind `db:"kind" json:"kind"`

	// Description is the character or package name as sold
	Description string `db:"description" json:"description"`

	// InventoryItemID links the costume/character item when known
	InventoryItemID *id.ID `db:"inventory_item_id" json:"inventoryItemId,omitempty"`

	// EmployeeID is the performer assigned to this line
	EmployeeID *id.ID `db:"employee_id" json:"employeeId,omitempty"`

	// Fee is what the performer is paid for this line
	Fee types.Money `db:"fee" json:"fee"`
}

// New creates a new scheduled Event.
func New(clientID id.ID, startsAt time.Time) *Event {
	e := &Event{
		Document:        entity.NewDocument(),
		ClientID:        clientID,
		DurationMinutes: 0,
		Status:          StatusScheduled,
		Lines:           make([]Line, 0),
	}
	e.Date = startsAt
	return e
}

// AddLine appends a booked character or package.
func (e *Event) AddLine(kind LineKind, description string, fee types.Money) *Line {
	line := Line{
		LineID:      id.New(),
		LineNo:      len(e.Lines) + 1,
		Kind:        kind,
		Description: description,
		Fee:         fee,
	}
	e.Lines = append(e.Lines, line)
	return &e.Lines[len(e.Lines)-1]
}

// EndTime returns the explicit end when set, otherwise start plus duration.
func (e *Event) EndTime() time.Time {
	if e.EndsAt != nil {
		return *e.EndsAt
	}
	return e.Date.Add(time.Duration(e.DurationMinutes) * time.Minute)
}

// Remainder is the part of the contract value not covered by the entry payment.
func (e *Event) Remainder() types.Money {
	return e.ContractValue.Sub(e.EntryPayment)
}

// Validate implements entity.Validatable.
func (e *Event) Validate(ctx context.Context) error {
	if err := e.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(e.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	switch e.Status {
	case StatusScheduled, StatusConfirmed, StatusDone, StatusCanceled:
	default:
		return apperror.NewValidation("invalid event status").
			WithDetail("field", "status").
			WithDetail("value", string(e.Status))
	}

	if e.DurationMinutes < 0 {
		return apperror.NewValidation("duration cannot be negative").
			WithDetail("field", "durationMinutes")
	}

	if e.EndsAt != nil && e.EndsAt.Before(e.Date) {
		return apperror.NewValidation("end time cannot precede start time").
			WithDetail("field", "endsAt")
	}

	if e.ContractValue.IsNegative() {
		return apperror.NewValidation("contract value cannot be negative").
			WithDetail("field", "contractValue")
	}

	if e.EntryPayment.IsNegative() {
		return apperror.NewValidation("entry payment cannot be negative").
			WithDetail("field", "entryPayment")
	}

	if e.EntryPayment.GreaterThan(e.ContractValue) {
		return apperror.NewValidation("entry payment cannot exceed contract value").
			WithDetail("field", "entryPayment")
	}

	for i, line := range e.Lines {
		if line.Kind != LineCharacter && line.Kind != LinePackage {
			return apperror.NewValidation("invalid line kind").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Description == "" {
			return apperror.NewValidation("line description is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Fee.IsNegative() {
			return apperror.NewValidation("fee cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// CanTransitionTo gates status changes: done and canceled are terminal.
func (e *Event) CanTransitionTo(next Status) bool {
	if e.Status == next {
		return true
	}
	switch e.Status {
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCanceled || next == StatusDone
	case StatusConfirmed:
		return next == StatusDone || next == StatusCanceled
	default:
		return false
	}
}
