package dto

import (
	"time"

	"festa/internal/core/id"
	"festa/internal/core/types"
	"festa/internal/domain/documents/event"
)

// EventLineDTO is one booked character or package.
type EventLineDTO struct {
	LineID          string      `json:"lineId,omitempty"`
	LineNo          int         `json:"lineNo"`
	Kind            string      `json:"kind" binding:"required,oneof=character package"`
	Description     string      `json:"description" binding:"required"`
	InventoryItemID *string     `json:"inventoryItemId,omitempty"`
	EmployeeID      *string     `json:"employeeId,omitempty"`
	Fee             types.Money `json:"fee"`
}

func fromEventLine(l event.Line) EventLineDTO {
	d := EventLineDTO{
		LineID:      l.LineID.String(),
		LineNo:      l.LineNo,
		Kind:        string(l.Kind),
		Description: l.Description,
		Fee:         l.Fee,
	}
	if l.InventoryItemID != nil {
		s := l.InventoryItemID.String()
		d.InventoryItemID = &s
	}
	if l.EmployeeID != nil {
		s := l.EmployeeID.String()
		d.EmployeeID = &s
	}
	return d
}

func (d EventLineDTO) toLine(lineNo int) (event.Line, error) {
	line := event.Line{
		LineID:      id.New(),
		LineNo:      lineNo,
		Kind:        event.LineKind(d.Kind),
		Description: d.Description,
		Fee:         d.Fee,
	}
	if d.InventoryItemID != nil && *d.InventoryItemID != "" {
		itemID, err := id.Parse(*d.InventoryItemID)
		if err != nil {
			return line, err
		}
		line.InventoryItemID = &itemID
	}
	if d.EmployeeID != nil && *d.EmployeeID != "" {
		empID, err := id.Parse(*d.EmployeeID)
		if err != nil {
			return line, err
		}
		line.EmployeeID = &empID
	}
	return line, nil
}

// EventResponse contains event booking fields.
type EventResponse struct {
	DocumentResponse
	ClientID         string         `json:"clientId"`
	CategoryID       *string        `json:"categoryId,omitempty"`
	DurationMinutes  int            `json:"durationMinutes"`
	EndsAt           *time.Time     `json:"endsAt,omitempty"`
	EndTime          time.Time      `json:"endTime"`
	Status           string         `json:"status"`
	ContractValue    types.Money    `json:"contractValue"`
	EntryPayment     types.Money    `json:"entryPayment"`
	InstallmentCount int            `json:"installmentCount"`
	Address          AddressDTO     `json:"address"`
	Lines            []EventLineDTO `json:"lines"`
}

// FromEvent creates EventResponse from the entity.
func FromEvent(e *event.Event) EventResponse {
	resp := EventResponse{
		DocumentResponse: FromDocument(e.Document),
		ClientID:         e.ClientID.String(),
		DurationMinutes:  e.DurationMinutes,
		EndsAt:           e.EndsAt,
		EndTime:          e.EndTime(),
		Status:           string(e.Status),
		ContractValue:    e.ContractValue,
		EntryPayment:     e.EntryPayment,
		InstallmentCount: e.InstallmentCount,
		Address:          FromAddress(e.AddressAware),
		Lines:            make([]EventLineDTO, 0, len(e.Lines)),
	}
	if e.CategoryID != nil {
		s := e.CategoryID.String()
		resp.CategoryID = &s
	}
	for _, l := range e.Lines {
		resp.Lines = append(resp.Lines, fromEventLine(l))
	}
	return resp
}

// CreateEventRequest for creating event bookings.
type CreateEventRequest struct {
	ClientID         string         `json:"clientId" binding:"required"`
	CategoryID       *string        `json:"categoryId"`
	Date             time.Time      `json:"date" binding:"required"`
	DurationMinutes  int            `json:"durationMinutes"`
	EndsAt           *time.Time     `json:"endsAt"`
	ContractValue    types.Money    `json:"contractValue"`
	EntryPayment     types.Money    `json:"entryPayment"`
	InstallmentCount int            `json:"installmentCount"`
	Comment          string         `json:"comment"`
	Address          AddressDTO     `json:"address"`
	Lines            []EventLineDTO `json:"lines"`
}

// ToEntity maps the request to a new event.
func (r CreateEventRequest) ToEntity() (*event.Event, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}

	e := event.New(clientID, r.Date)
	if r.CategoryID != nil && *r.CategoryID != "" {
		catID, err := id.Parse(*r.CategoryID)
		if err != nil {
			return nil, err
		}
		e.CategoryID = &catID
	}
	e.DurationMinutes = r.DurationMinutes
	e.EndsAt = r.EndsAt
	e.ContractValue = r.ContractValue
	e.EntryPayment = r.EntryPayment
	e.InstallmentCount = r.InstallmentCount
	e.Comment = r.Comment
	r.Address.ApplyTo(&e.AddressAware)

	for i, l := range r.Lines {
		line, err := l.toLine(i + 1)
		if err != nil {
			return nil, err
		}
		e.Lines = append(e.Lines, line)
	}

	return e, nil
}

// UpdateEventRequest for updating event bookings.
type UpdateEventRequest struct {
	ClientID         *string         `json:"clientId"`
	CategoryID       *string         `json:"categoryId"`
	Date             *time.Time      `json:"date"`
	DurationMinutes  *int            `json:"durationMinutes"`
	EndsAt           *time.Time      `json:"endsAt"`
	ContractValue    *types.Money    `json:"contractValue"`
	EntryPayment     *types.Money    `json:"entryPayment"`
	InstallmentCount *int            `json:"installmentCount"`
	Comment          *string         `json:"comment"`
	Address          *AddressDTO     `json:"address"`
	Lines            *[]EventLineDTO `json:"lines"`
	Version          int             `json:"version" binding:"required,min=1"`
}

// ApplyTo maps changed fields onto the existing event.
func (r UpdateEventRequest) ApplyTo(e *event.Event) error {
	if r.ClientID != nil {
		clientID, err := id.Parse(*r.ClientID)
		if err != nil {
			return err
		}
		e.ClientID = clientID
	}
	if r.CategoryID != nil {
		if *r.CategoryID == "" {
			e.CategoryID = nil
		} else {
			catID, err := id.Parse(*r.CategoryID)
			if err != nil {
				return err
			}
			e.CategoryID = &catID
		}
	}
	if r.Date != nil {
		e.Date = *r.Date
	}
	if r.DurationMinutes != nil {
		e.DurationMinutes = *r.DurationMinutes
	}
	if r.EndsAt != nil {
		e.EndsAt = r.EndsAt
	}
	if r.ContractValue != nil {
		e.ContractValue = *r.ContractValue
	}
	if r.EntryPayment != nil {
		e.EntryPayment = *r.EntryPayment
	}
	if r.InstallmentCount != nil {
		e.InstallmentCount = *r.InstallmentCount
	}
	if r.Comment != nil {
		e.Comment = *r.Comment
	}
	if r.Address != nil {
		r.Address.ApplyTo(&e.AddressAware)
	}
	if r.Lines != nil {
		lines := make([]event.Line, 0, len(*r.Lines))
		for i, l := range *r.Lines {
			line, err := l.toLine(i + 1)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}
		e.Lines = lines
	}
	e.Version = r.Version
	return nil
}

// SetEventStatusRequest for status transitions.
type SetEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled confirmed done canceled"`
}
