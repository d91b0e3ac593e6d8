// Package employee provides the Employee catalog: performers, drivers and
// office staff that get assigned to events and track their hours.
package employee

import (
	"context"
	"regexp"
	"time"

	"festa/internal/core/apperror"
	"festa/internal/core/entity"
	"festa/internal/core/id"
	"festa/internal/core/types"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Employee represents a member of staff.
type Employee struct {
	entity.Catalog

	// RoleID references the employee_role entry of the reference catalog
	RoleID *id.ID `db:"role_id" json:"roleId,omitempty"`

	// Skills lists skill reference codes (stored as JSONB array)
	Skills entity.Attributes `db:"skills" json:"skills,omitempty"`

	Phone *string `db:"phone" json:"phone,omitempty"`
	Email *string `db:"email" json:"email,omitempty"`

	// HourlyRate is used to price time records
	HourlyRate types.Money `db:"hourly_rate" json:"hourlyRate"`

	// HireDate is when the employee started
	HireDate *time.Time `db:"hire_date" json:"hireDate,omitempty"`

	// Active gates assignment to new events
	Active bool `db:"active" json:"active"`
}

// New creates a new active Employee.
func New(code, name string) *Employee {
	return &Employee{
		Catalog: entity.NewCatalog(code, name),
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (e *Employee) Validate(ctx context.Context) error {
	if err := e.Catalog.Validate(ctx); err != nil {
		return err
	}

	if e.Email != nil && *e.Email != "" && !emailRE.MatchString(*e.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	if e.HourlyRate.IsNegative() {
		return apperror.NewValidation("hourly rate cannot be negative").
			WithDetail("field", "hourlyRate")
	}

	return nil
}
