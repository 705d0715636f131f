package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every employee, loading the collection on first use
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// ListOptions returns the employee picker entries
	ListOptions(ctx context.Context) ([]EmployeeOption, error)

	// CreateEmployee registers a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee deletes an employee by id
	DeleteEmployee(ctx context.Context, id string) error

	// EnsureLoaded loads the collection unless it already has been
	EnsureLoaded(ctx context.Context) error

	// Resolve looks an employee up in the local copy (ErrEmployeeNotFound if absent)
	Resolve(id string) (Employee, error)

	// DisplayName returns the name for a reference, or NotAvailable
	DisplayName(ref Ref) string
}
