package dto

import (
	"time"

	"festa/internal/core/entity"
	"festa/internal/core/id"
	"festa/internal/core/types"
	"festa/internal/domain/catalogs/employee"
)

// EmployeeResponse contains employee fields.
type EmployeeResponse struct {
	BaseResponse
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	RoleID     *string           `json:"roleId,omitempty"`
	Skills     entity.Attributes `json:"skills,omitempty"`
	Phone      *string           `json:"phone,omitempty"`
	Email      *string           `json:"email,omitempty"`
	HourlyRate types.Money       `json:"hourlyRate"`
	HireDate   *time.Time        `json:"hireDate,omitempty"`
	Active     bool              `json:"active"`
}

// FromEmployee creates EmployeeResponse from the entity.
func FromEmployee(e *employee.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		BaseResponse: FromBaseCatalog(e.BaseCatalog),
		Code:         e.Code,
		Name:         e.Name,
		Skills:       e.Skills,
		Phone:        e.Phone,
		Email:        e.Email,
		HourlyRate:   e.HourlyRate,
		HireDate:     e.HireDate,
		Active:       e.Active,
	}
	if e.RoleID != nil {
		s := e.RoleID.String()
		resp.RoleID = &s
	}
	return resp
}

// CreateEmployeeRequest for creating employees.
type CreateEmployeeRequest struct {
	Code       string            `json:"code"`
	Name       string            `json:"name" binding:"required"`
	RoleID     *string           `json:"roleId"`
	Skills     entity.Attributes `json:"skills"`
	Phone      *string           `json:"phone"`
	Email      *string           `json:"email"`
	HourlyRate types.Money       `json:"hourlyRate"`
	HireDate   *time.Time        `json:"hireDate"`
}

// ToEntity maps the request to a new employee.
func (r CreateEmployeeRequest) ToEntity() (*employee.Employee, error) {
	e := employee.New(r.Code, r.Name)
	if r.RoleID != nil && *r.RoleID != "" {
		roleID, err := id.Parse(*r.RoleID)
		if err != nil {
			return nil, err
		}
		e.RoleID = &roleID
	}
	if r.Skills != nil {
		e.Skills = r.Skills
	}
	e.Phone = r.Phone
	e.Email = r.Email
	e.HourlyRate = r.HourlyRate
	e.HireDate = r.HireDate
	return e, nil
}

// UpdateEmployeeRequest for updating employees.
type UpdateEmployeeRequest struct {
	Name       *string           `json:"name"`
	RoleID     *string           `json:"roleId"`
	Skills     entity.Attributes `json:"skills"`
	Phone      *string           `json:"phone"`
	Email      *string           `json:"email"`
	HourlyRate *types.Money      `json:"hourlyRate"`
	HireDate   *time.Time        `json:"hireDate"`
	Active     *bool             `json:"active"`
	Version    int               `json:"version" binding:"required,min=1"`
}

// ApplyTo maps changed fields onto the existing employee.
func (r UpdateEmployeeRequest) ApplyTo(e *employee.Employee) error {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.RoleID != nil {
		if *r.RoleID == "" {
			e.RoleID = nil
		} else {
			roleID, err := id.Parse(*r.RoleID)
			if err != nil {
				return err
			}
			e.RoleID = &roleID
		}
	}
	if r.Skills != nil {
		e.Skills = r.Skills
	}
	if r.Phone != nil {
		e.Phone = r.Phone
	}
	if r.Email != nil {
		e.Email = r.Email
	}
	if r.HourlyRate != nil {
		e.HourlyRate = *r.HourlyRate
	}
	if r.HireDate != nil {
		e.HireDate = r.HireDate
	}
	if r.Active != nil {
		e.Active = *r.Active
	}
	e.Version = r.Version
	return nil
}
