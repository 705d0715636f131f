package leave

import (
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// validatePeriod checks both dates and that the period does not end before it starts.
func validatePeriod(startDate, endDate string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	start, startValid := validator.IsValidDate(startDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(endDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	return errs
}

func validateStatus(status string) validator.ValidationErrors {
	if Status(status).Valid() {
		return nil
	}
	return validator.ValidationErrors{{
		Field:   "status",
		Message: "status must be one of: " + strings.Join(Statuses, ", "),
	}}
}

// ========================================
// LEAVE REQUEST (new request form)
// ========================================

type CreateLeaveRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason" validate:"required,max=1000"`
	Status     string `json:"status"`
}

func (r *CreateLeaveRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Status == "" {
		r.Status = string(StatusPending)
	}

	errs := validator.Struct(r)
	errs = append(errs, validatePeriod(r.StartDate, r.EndDate)...)
	errs = append(errs, validateStatus(r.Status)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RequestDraft holds the fields of the new leave request form.
type RequestDraft struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

// NewRequestDraft returns an empty form with the default status.
func NewRequestDraft() RequestDraft {
	return RequestDraft{Status: string(StatusPending)}
}

// ChangeRequestDraftRequest changes individual fields of the new request form.
type ChangeRequestDraftRequest struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (r ChangeRequestDraftRequest) ApplyTo(draft *RequestDraft) {
	if r.StartDate != nil {
		draft.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		draft.EndDate = *r.EndDate
	}
	if r.Reason != nil {
		draft.Reason = *r.Reason
	}
	if r.Status != nil {
		draft.Status = *r.Status
	}
}

type SelectEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
}

// RequestState is the state of the new leave request form.
type RequestState struct {
	Employee   *employee.EmployeeOption `json:"employee,omitempty"`
	Draft      RequestDraft             `json:"draft"`
	Submitting bool                     `json:"submitting"`
	Message    string                   `json:"message,omitempty"`
	Created    *LeaveResponse           `json:"created,omitempty"`
}

// ========================================
// LEAVE EDIT (review form)
// ========================================

// UpdateLeaveRequest is the edit form draft. Every field is sent on submit.
type UpdateLeaveRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

func DraftFromLeave(l Leave) UpdateLeaveRequest {
	return UpdateLeaveRequest{
		StartDate: l.StartDate.String(),
		EndDate:   l.EndDate.String(),
		Reason:    l.Reason,
		Status:    string(l.Status),
	}
}

func (r *UpdateLeaveRequest) Validate() error {
	errs := validatePeriod(r.StartDate, r.EndDate)
	errs = append(errs, validateStatus(r.Status)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpdateLeaveRequest) Patch() (LeavePatch, error) {
	if err := r.Validate(); err != nil {
		return LeavePatch{}, err
	}
	return LeavePatch{
		StartDate: calendar.MustParse(r.StartDate),
		EndDate:   calendar.MustParse(r.EndDate),
		Reason:    r.Reason,
		Status:    Status(r.Status),
	}, nil
}

type ChangeLeaveDraftRequest struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (r ChangeLeaveDraftRequest) ApplyTo(draft *UpdateLeaveRequest) {
	if r.StartDate != nil {
		draft.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		draft.EndDate = *r.EndDate
	}
	if r.Reason != nil {
		draft.Reason = *r.Reason
	}
	if r.Status != nil {
		draft.Status = *r.Status
	}
}

// LeavePatch overwrites the period, reason and status of a leave request.
type LeavePatch struct {
	StartDate calendar.Date `json:"startDate"`
	EndDate   calendar.Date `json:"endDate"`
	Reason    string        `json:"reason"`
	Status    Status        `json:"status"`
}

func (p LeavePatch) Apply(l Leave) Leave {
	l.StartDate = p.StartDate
	l.EndDate = p.EndDate
	l.Reason = p.Reason
	l.Status = p.Status
	return l
}

// StatusPatch only changes the status, used to approve or decline.
type StatusPatch struct {
	Status Status `json:"status"`
}

func (p StatusPatch) Apply(l Leave) Leave {
	l.Status = p.Status
	return l
}

// EditSnapshot is the state of the leave edit form.
type EditSnapshot = record.EditSnapshot[UpdateLeaveRequest]

// LeaveResponse is one row of the leave table.
type LeaveResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id,omitempty"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}

func NewLeaveResponse(l Leave, name string) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.Employee.ID,
		EmployeeName: name,
		StartDate:    l.StartDate.String(),
		EndDate:      l.EndDate.String(),
		Reason:       l.Reason,
		Status:       l.Status.Label(),
	}
	if resp.StartDate == "" {
		resp.StartDate = employee.NotAvailable
	}
	if resp.EndDate == "" {
		resp.EndDate = employee.NotAvailable
	}
	return resp
}
