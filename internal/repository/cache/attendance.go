package cache

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
)

const TopicAttendance = "attendance"

var _ attendance.AttendanceRepository = (*Store[attendance.Attendance])(nil)

func NewAttendanceStore(gw Gateway[attendance.Attendance], hub *sse.Hub) *Store[attendance.Attendance] {
	return NewStore(TopicAttendance, gw, hub)
}
