// Package timerecord provides the TimeRecord document: one clock-in /
// clock-out pair per employee shift. Document.Date is the clock-in instant.
package timerecord

import (
	"context"
	"time"

	"festa/internal/core/apperror"
	"festa/internal/core/entity"
	"festa/internal/core/id"
)

// TimeRecord represents one worked shift, possibly still open.
type TimeRecord struct {
	entity.Document

	// EmployeeID references the employee catalog
	EmployeeID id.ID `db:"employee_id" json:"employeeId"`

	// ClockOut is nil while the shift is open
	ClockOut *time.Time `db:"clock_out" json:"clockOut,omitempty"`

	// EventID optionally ties the shift to a booking
	EventID *id.ID `db:"event_id" json:"eventId,omitempty"`
}

// New opens a shift at the given instant.
func New(employeeID id.ID, clockIn time.Time) *TimeRecord {
	r := &TimeRecord{
		Document:   entity.NewDocument(),
		EmployeeID: employeeID,
	}
	r.Date = clockIn
	return r
}

// IsOpen reports whether the shift is still running.
func (r *TimeRecord) IsOpen() bool {
	return r.ClockOut == nil
}

// Worked returns the shift duration; open shifts measure up to now.
func (r *TimeRecord) Worked(now time.Time) time.Duration {
	end := now
	if r.ClockOut != nil {
		end = *r.ClockOut
	}
	if end.Before(r.Date) {
		return 0
	}
	return end.Sub(r.Date)
}

// Close stamps the clock-out instant.
func (r *TimeRecord) Close(at time.Time) error {
	if r.ClockOut != nil {
		return apperror.NewClockState(r.EmployeeID.String(), "shift is already closed")
	}
	if at.Before(r.Date) {
		return apperror.NewValidation("clock-out cannot precede clock-in").
			WithDetail("field", "clockOut")
	}
	r.ClockOut = &at
	r.Touch()
	return nil
}

// Validate implements entity.Validatable.
func (r *TimeRecord) Validate(ctx context.Context) error {
	if err := r.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(r.EmployeeID) {
		return apperror.NewValidation("employee is required").
			WithDetail("field", "employeeId")
	}

	if r.ClockOut != nil && r.ClockOut.Before(r.Date) {
		return apperror.NewValidation("clock-out cannot precede clock-in").
			WithDetail("field", "clockOut")
	}

	return nil
}
