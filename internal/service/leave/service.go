package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/edit"
)

type LeaveServiceImpl struct {
	leaveRepo       leave.LeaveRepository
	employeeService employee.EmployeeService
	edits           *edit.Session[leave.Leave, leave.UpdateLeaveRequest]
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeService employee.EmployeeService) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		leaveRepo:       leaveRepo,
		employeeService: employeeService,
		edits: edit.NewSession[leave.Leave, leave.UpdateLeaveRequest]("leaves", leaveRepo, edit.Form[leave.Leave, leave.UpdateLeaveRequest]{
			Load: leave.DraftFromLeave,
			Patch: func(draft leave.UpdateLeaveRequest) (record.Patch[leave.Leave], error) {
				patch, err := draft.Patch()
				if err != nil {
					return nil, err
				}
				return patch, nil
			},
			NotFound: leave.ErrLeaveRequestNotFound,
		}),
	}
}

var _ leave.LeaveService = (*LeaveServiceImpl)(nil)

func (s *LeaveServiceImpl) ensureLoaded(ctx context.Context) error {
	if s.leaveRepo.Loaded() {
		return nil
	}
	return s.leaveRepo.Load(ctx)
}

func (s *LeaveServiceImpl) toResponse(l leave.Leave) leave.LeaveResponse {
	return leave.NewLeaveResponse(l, s.employeeService.DisplayName(l.Employee))
}

func (s *LeaveServiceImpl) ListLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := s.employeeService.EnsureLoaded(ctx); err != nil {
		slog.Warn("employee names unavailable", "error", err)
	}

	leaves := s.leaveRepo.List()
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, s.toResponse(l))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	if err := s.leaveRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave request %s: %w", id, err)
	}
	return nil
}

func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, id, leave.StatusApproved)
}

func (s *LeaveServiceImpl) DeclineLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, id, leave.StatusDeclined)
}

// resolve moves a pending request to its final status.
func (s *LeaveServiceImpl) resolve(ctx context.Context, id string, status leave.Status) (leave.LeaveResponse, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return leave.LeaveResponse{}, err
	}

	request, found := s.leaveRepo.Get(id)
	if !found {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	if err := s.leaveRepo.Update(ctx, id, leave.StatusPatch{Status: status}); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	updated, found := s.leaveRepo.Get(id)
	if !found {
		// Removed by a concurrent reload; report what was confirmed.
		updated = leave.StatusPatch{Status: status}.Apply(request)
	}
	return s.toResponse(updated), nil
}

func (s *LeaveServiceImpl) StartEdit(ctx context.Context, id string) (leave.EditSnapshot, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return s.edits.Snapshot(), err
	}
	return s.edits.Start(id)
}

func (s *LeaveServiceImpl) ChangeEdit(ctx context.Context, req leave.ChangeLeaveDraftRequest) (leave.EditSnapshot, error) {
	return s.edits.Change(req.ApplyTo)
}

func (s *LeaveServiceImpl) SubmitEdit(ctx context.Context) (leave.EditSnapshot, error) {
	return s.edits.Submit(ctx)
}

func (s *LeaveServiceImpl) CancelEdit(ctx context.Context) leave.EditSnapshot {
	return s.edits.Cancel()
}

func (s *LeaveServiceImpl) EditState(ctx context.Context) leave.EditSnapshot {
	return s.edits.Snapshot()
}
