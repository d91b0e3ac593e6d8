package catalog_repo

import (
	"festa/internal/domain/catalogs/employee"
	"festa/internal/infrastructure/storage/postgres"
)

const employeeTable = "cat_employees"

// EmployeeRepo implements employee.Repository.
type EmployeeRepo struct {
	*BaseCatalogRepo[*employee.Employee]
}

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(txm *postgres.TxManager) *EmployeeRepo {
	return &EmployeeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*employee.Employee](
			txm,
			employeeTable,
			postgres.ExtractDBColumns[employee.Employee](),
			func() *employee.Employee { return &employee.Employee{} },
		),
	}
}
