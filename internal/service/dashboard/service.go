package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

var _ dashboard.DashboardService = (*DashboardServiceImpl)(nil)

// Refresh reloads all three collections in parallel. A collection whose
// load fails keeps its previous contents and does not stop the others.
func (s *DashboardServiceImpl) Refresh(ctx context.Context) (*dashboard.RefreshResponse, error) {
	var g errgroup.Group
	var errs [3]error

	g.Go(func() error {
		if err := s.employeeRepo.Load(ctx); err != nil {
			errs[0] = fmt.Errorf("employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.attendanceRepo.Load(ctx); err != nil {
			errs[1] = fmt.Errorf("attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.leaveRepo.Load(ctx); err != nil {
			errs[2] = fmt.Errorf("leaves: %w", err)
		}
		return nil
	})

	_ = g.Wait()
	if err := errors.Join(errs[:]...); err != nil {
		return nil, err
	}

	return &dashboard.RefreshResponse{
		Employees:  len(s.employeeRepo.List()),
		Attendance: len(s.attendanceRepo.List()),
		Leaves:     len(s.leaveRepo.List()),
	}, nil
}

// RefreshAll is Refresh for the scheduler.
func (s *DashboardServiceImpl) RefreshAll(ctx context.Context) error {
	_, err := s.Refresh(ctx)
	return err
}

func (s *DashboardServiceImpl) GetWeeklyAttendance(ctx context.Context) (*dashboard.WeeklyAttendanceResponse, error) {
	if !s.attendanceRepo.Loaded() {
		if err := s.attendanceRepo.Load(ctx); err != nil {
			return nil, err
		}
	}
	return Summarize(WeeklyAttendance(s.attendanceRepo.List())), nil
}
