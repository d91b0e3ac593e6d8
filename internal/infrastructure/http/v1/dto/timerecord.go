package dto

import (
	"time"

	"festa/internal/domain/documents/timerecord"
)

// TimeRecordResponse contains time record fields.
type TimeRecordResponse struct {
	DocumentResponse
	EmployeeID    string     `json:"employeeId"`
	ClockIn       time.Time  `json:"clockIn"`
	ClockOut      *time.Time `json:"clockOut,omitempty"`
	EventID       *string    `json:"eventId,omitempty"`
	WorkedMinutes int        `json:"workedMinutes"`
	Open          bool       `json:"open"`
}

// FromTimeRecord creates TimeRecordResponse from the entity.
func FromTimeRecord(t *timerecord.TimeRecord) TimeRecordResponse {
	resp := TimeRecordResponse{
		DocumentResponse: FromDocument(t.Document),
		EmployeeID:       t.EmployeeID.String(),
		ClockIn:          t.Date,
		ClockOut:         t.ClockOut,
		WorkedMinutes:    int(t.Worked(time.Now()).Minutes()),
		Open:             t.IsOpen(),
	}
	if t.EventID != nil {
		s := t.EventID.String()
		resp.EventID = &s
	}
	return resp
}

// ClockInRequest starts a time record.
type ClockInRequest struct {
	EmployeeID string     `json:"employeeId"`
	At         *time.Time `json:"at"`
}

// ClockOutRequest closes a time record.
type ClockOutRequest struct {
	At *time.Time `json:"at"`
}

// UpdateTimeRecordRequest for correcting time records.
type UpdateTimeRecordRequest struct {
	ClockIn  *time.Time `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut"`
	Comment  *string    `json:"comment"`
	Version  int        `json:"version" binding:"required,min=1"`
}

// ApplyTo maps changed fields onto the existing record.
func (r UpdateTimeRecordRequest) ApplyTo(t *timerecord.TimeRecord) {
	if r.ClockIn != nil {
		t.Date = *r.ClockIn
	}
	if r.ClockOut != nil {
		t.ClockOut = r.ClockOut
	}
	if r.Comment != nil {
		t.Comment = *r.Comment
	}
	t.Version = r.Version
}
