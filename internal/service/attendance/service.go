package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/edit"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeService employee.EmployeeService
	edits           *edit.Session[attendance.Attendance, attendance.UpdateAttendanceRequest]
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeService employee.EmployeeService,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeService: employeeService,
		edits: edit.NewSession[attendance.Attendance, attendance.UpdateAttendanceRequest]("attendance", attendanceRepo, edit.Form[attendance.Attendance, attendance.UpdateAttendanceRequest]{
			Load: attendance.DraftFromAttendance,
			Patch: func(draft attendance.UpdateAttendanceRequest) (record.Patch[attendance.Attendance], error) {
				patch, err := draft.Patch()
				if err != nil {
					return nil, err
				}
				return patch, nil
			},
			NotFound: attendance.ErrAttendanceNotFound,
		}),
	}
}

var _ attendance.AttendanceService = (*AttendanceServiceImpl)(nil)

func (s *AttendanceServiceImpl) ensureLoaded(ctx context.Context) error {
	if s.attendanceRepo.Loaded() {
		return nil
	}
	return s.attendanceRepo.Load(ctx)
}

func (s *AttendanceServiceImpl) toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.NewAttendanceResponse(a, s.employeeService.DisplayName(a.Employee))
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	// Names fall back to the populated reference or N/A when employees cannot be loaded.
	if err := s.employeeService.EnsureLoaded(ctx); err != nil {
		slog.Warn("employee names unavailable", "error", err)
	}

	records := s.attendanceRepo.List()
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, s.toResponse(a))
	}
	return responses, nil
}

// RecordAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.employeeService.EnsureLoaded(ctx); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if _, err := s.employeeService.Resolve(req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, req)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record attendance: %w", err)
	}
	return s.toResponse(created), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := s.attendanceRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	return nil
}

// StartEdit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartEdit(ctx context.Context, id string) (attendance.EditSnapshot, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return s.edits.Snapshot(), err
	}
	return s.edits.Start(id)
}

// ChangeEdit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ChangeEdit(ctx context.Context, req attendance.ChangeAttendanceDraftRequest) (attendance.EditSnapshot, error) {
	return s.edits.Change(req.ApplyTo)
}

// SubmitEdit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitEdit(ctx context.Context) (attendance.EditSnapshot, error) {
	return s.edits.Submit(ctx)
}

// CancelEdit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CancelEdit(ctx context.Context) attendance.EditSnapshot {
	return s.edits.Cancel()
}

// EditState implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EditState(ctx context.Context) attendance.EditSnapshot {
	return s.edits.Snapshot()
}
