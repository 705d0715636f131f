package cache

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
)

const TopicEmployees = "employees"

var _ employee.EmployeeRepository = (*Store[employee.Employee])(nil)

func NewEmployeeStore(gw Gateway[employee.Employee], hub *sse.Hub) *Store[employee.Employee] {
	return NewStore(TopicEmployees, gw, hub)
}
