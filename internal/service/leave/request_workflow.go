package leave

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
)

const (
	MessageSubmitted   = "Leave request submitted successfully"
	MessageSubmitError = "Error submitting leave request"
)

// RequestWorkflowImpl is the new leave request form. The selected employee
// survives a successful submit; the draft is reset.
type RequestWorkflowImpl struct {
	leaveRepo       leave.LeaveRepository
	employeeService employee.EmployeeService

	mu         sync.Mutex
	selected   *employee.Employee
	draft      leave.RequestDraft
	submitting bool
	message    string
	created    *leave.LeaveResponse
}

func NewRequestWorkflow(leaveRepo leave.LeaveRepository, employeeService employee.EmployeeService) *RequestWorkflowImpl {
	return &RequestWorkflowImpl{
		leaveRepo:       leaveRepo,
		employeeService: employeeService,
		draft:           leave.NewRequestDraft(),
	}
}

var _ leave.RequestWorkflow = (*RequestWorkflowImpl)(nil)

// SelectEmployee never fails: an id that cannot be resolved clears the selection.
func (w *RequestWorkflowImpl) SelectEmployee(ctx context.Context, id string) leave.RequestState {
	if err := w.employeeService.EnsureLoaded(ctx); err != nil {
		slog.Warn("employees unavailable for leave request", "error", err)
	}

	e, err := w.employeeService.Resolve(id)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.selected = nil
	} else {
		w.selected = &e
	}
	return w.stateLocked()
}

func (w *RequestWorkflowImpl) ChangeDraft(ctx context.Context, req leave.ChangeRequestDraftRequest) leave.RequestState {
	w.mu.Lock()
	defer w.mu.Unlock()

	req.ApplyTo(&w.draft)
	return w.stateLocked()
}

// Submit creates the request through the leave store. A second submit while
// one is outstanding is refused.
func (w *RequestWorkflowImpl) Submit(ctx context.Context) (leave.RequestState, error) {
	w.mu.Lock()
	if w.submitting {
		defer w.mu.Unlock()
		return w.stateLocked(), leave.ErrSubmitInFlight
	}
	if w.selected == nil {
		w.message = leave.ErrNoEmployeeSelected.Error()
		defer w.mu.Unlock()
		return w.stateLocked(), leave.ErrNoEmployeeSelected
	}

	req := leave.CreateLeaveRequest{
		EmployeeID: w.selected.ID,
		StartDate:  w.draft.StartDate,
		EndDate:    w.draft.EndDate,
		Reason:     w.draft.Reason,
		Status:     w.draft.Status,
	}
	if err := req.Validate(); err != nil {
		w.message = MessageSubmitError
		defer w.mu.Unlock()
		return w.stateLocked(), err
	}

	w.submitting = true
	w.message = ""
	w.created = nil
	w.mu.Unlock()

	created, err := w.leaveRepo.Create(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false

	if err != nil {
		slog.Error("failed to submit leave request", "employee_id", req.EmployeeID, "error", err)
		w.message = MessageSubmitError
		return w.stateLocked(), err
	}

	resp := leave.NewLeaveResponse(created, w.employeeService.DisplayName(created.Employee))
	w.created = &resp
	w.draft = leave.NewRequestDraft()
	w.message = MessageSubmitted
	return w.stateLocked(), nil
}

func (w *RequestWorkflowImpl) State(ctx context.Context) leave.RequestState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *RequestWorkflowImpl) stateLocked() leave.RequestState {
	state := leave.RequestState{
		Draft:      w.draft,
		Submitting: w.submitting,
		Message:    w.message,
		Created:    w.created,
	}
	if w.selected != nil {
		option := employee.NewEmployeeOption(*w.selected)
		state.Employee = &option
	}
	return state
}
