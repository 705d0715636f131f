package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/cache"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/cache/cachetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc          *DashboardServiceImpl
	employeeGW   *cachetest.Gateway[employee.Employee]
	attendanceGW *cachetest.Gateway[attendance.Attendance]
	leaveGW      *cachetest.Gateway[leave.Leave]
	attendance   *cache.Store[attendance.Attendance]
}

func newFixture() fixture {
	f := fixture{
		employeeGW: cachetest.NewGateway(employee.Employee{ID: "e1", Name: "Asha"}, employee.Employee{ID: "e2", Name: "Bilal"}),
		attendanceGW: cachetest.NewGateway(
			rec(1, attendance.StatusPresent),
			rec(3, attendance.StatusAbsent),
			rec(7, attendance.StatusPresent),
		),
		leaveGW: cachetest.NewGateway(leave.Leave{ID: "l1", Status: leave.StatusPending}),
	}
	f.attendance = cache.NewAttendanceStore(f.attendanceGW, nil)
	f.svc = NewDashboardService(
		cache.NewEmployeeStore(f.employeeGW, nil),
		f.attendance,
		cache.NewLeaveStore(f.leaveGW, nil),
	)
	return f
}

func TestDashboardService_Refresh(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Employees)
	assert.Equal(t, 3, resp.Attendance)
	assert.Equal(t, 1, resp.Leaves)
	assert.NoError(t, f.svc.RefreshAll(context.Background()))
	assert.Equal(t, 2, f.attendanceGW.Calls["list"])
}

func TestDashboardService_RefreshFailure(t *testing.T) {
	f := newFixture()
	f.leaveGW.Err = errors.New("leaves down")

	_, err := f.svc.Refresh(context.Background())

	assert.ErrorIs(t, err, record.ErrFetch)
	assert.ErrorContains(t, err, "leaves")
}

func TestDashboardService_RefreshKeepsSiblingLoads(t *testing.T) {
	// Setup
	f := newFixture()
	f.employeeGW.Err = errors.New("employees down")
	f.leaveGW.Err = errors.New("leaves down")

	// Act
	_, err := f.svc.Refresh(context.Background())

	// Assert
	assert.ErrorIs(t, err, record.ErrFetch)
	assert.ErrorContains(t, err, "employees down")
	assert.ErrorContains(t, err, "leaves down")
	assert.True(t, f.attendance.Loaded())
	assert.Equal(t, 3, f.attendance.Len())
}

func TestDashboardService_GetWeeklyAttendance(t *testing.T) {
	// Setup
	f := newFixture()
	ctx := context.Background()

	// Act
	resp, err := f.svc.GetWeeklyAttendance(ctx)
	require.NoError(t, err)
	_, err = f.svc.GetWeeklyAttendance(ctx)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, resp.Buckets[0].Present)
	assert.Equal(t, 1, resp.Buckets[2].Absent)
	assert.Equal(t, 1, resp.TotalPresent)
	assert.Equal(t, 1, resp.TotalAbsent)
	assert.Equal(t, "50", resp.PresentRate.String())
	assert.Equal(t, 1, f.attendanceGW.Calls["list"])
}

func TestDashboardService_GetWeeklyAttendance_FetchError(t *testing.T) {
	f := newFixture()
	f.attendanceGW.Err = errors.New("down")

	_, err := f.svc.GetWeeklyAttendance(context.Background())

	assert.ErrorIs(t, err, record.ErrFetch)
}
