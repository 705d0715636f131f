package employee

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
)

// EmployeeRepository is the local copy of the employee collection.
// Mutations are applied locally only after the records service confirmed them.
type EmployeeRepository interface {
	// Load replaces the local copy with the full collection
	Load(ctx context.Context) error
	Loaded() bool

	List() []Employee
	Get(id string) (Employee, bool)

	Create(ctx context.Context, draft any) (Employee, error)
	Update(ctx context.Context, id string, patch record.Patch[Employee]) error
	Remove(ctx context.Context, id string) error
}
