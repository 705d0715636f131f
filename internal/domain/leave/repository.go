package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
)

// LeaveRepository is the local copy of the leave collection.
type LeaveRepository interface {
	Load(ctx context.Context) error
	Loaded() bool

	List() []Leave
	Get(id string) (Leave, bool)

	Create(ctx context.Context, draft any) (Leave, error)
	Update(ctx context.Context, id string, patch record.Patch[Leave]) error
	Remove(ctx context.Context, id string) error
}
