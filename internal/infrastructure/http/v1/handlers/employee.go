package handlers

import (
	"festa/internal/domain/catalogs/employee"
	"festa/internal/infrastructure/http/v1/dto"
)

// EmployeeHTTPHandler is the catalog handler specialized for employees.
type EmployeeHTTPHandler = CatalogHandler[
	*employee.Employee,
	dto.CreateEmployeeRequest,
	dto.UpdateEmployeeRequest,
]

// NewEmployeeHandler creates the employee catalog handler.
func NewEmployeeHandler(base *BaseHandler, service *employee.Service) *EmployeeHTTPHandler {
	config := CatalogHandlerConfig[
		*employee.Employee,
		dto.CreateEmployeeRequest,
		dto.UpdateEmployeeRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "employee",
		MapCreateDTO: func(req dto.CreateEmployeeRequest) (*employee.Employee, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateEmployeeRequest, existing *employee.Employee) (*employee.Employee, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(e *employee.Employee) any {
			return dto.FromEmployee(e)
		},
	}

	return NewCatalogHandler(base, config)
}
