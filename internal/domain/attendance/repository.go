package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
)

// AttendanceRepository is the local copy of the attendance collection.
type AttendanceRepository interface {
	Load(ctx context.Context) error
	Loaded() bool

	List() []Attendance
	Get(id string) (Attendance, bool)

	Create(ctx context.Context, draft any) (Attendance, error)
	Update(ctx context.Context, id string, patch record.Patch[Attendance]) error
	Remove(ctx context.Context, id string) error
}
