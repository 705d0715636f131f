package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

var _ employee.EmployeeService = (*EmployeeServiceImpl)(nil)

// EnsureLoaded implements employee.EmployeeService.
func (s *EmployeeServiceImpl) EnsureLoaded(ctx context.Context) error {
	if s.employeeRepo.Loaded() {
		return nil
	}
	return s.employeeRepo.Load(ctx)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	if err := s.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	employees := s.employeeRepo.List()
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// ListOptions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	if err := s.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	employees := s.employeeRepo.List()
	options := make([]employee.EmployeeOption, 0, len(employees))
	for _, e := range employees {
		options = append(options, employee.NewEmployeeOption(e))
	}
	return options, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.NewEmployeeResponse(created), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	return nil
}

// Resolve implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Resolve(id string) (employee.Employee, error) {
	if id == "" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	e, found := s.employeeRepo.Get(id)
	if !found {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// DisplayName prefers the local employee copy, then the name the records
// service populated into the reference.
func (s *EmployeeServiceImpl) DisplayName(ref employee.Ref) string {
	if ref.IsZero() {
		return employee.NotAvailable
	}
	if e, err := s.Resolve(ref.ID); err == nil && e.Name != "" {
		return e.Name
	}
	if ref.Name != "" {
		return ref.Name
	}
	return employee.NotAvailable
}
