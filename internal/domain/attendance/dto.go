package attendance

import (
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CreateAttendanceRequest is the daily attendance entry.
type CreateAttendanceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required"`
	WorkDone   string `json:"workDone,omitempty" validate:"max=2000"`
}

func (r *CreateAttendanceRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(Statuses, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest is the edit form draft. Every field is sent on submit.
type UpdateAttendanceRequest struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	WorkDone string `json:"workDone"`
}

// DraftFromAttendance loads a record's editable fields into a draft.
func DraftFromAttendance(a Attendance) UpdateAttendanceRequest {
	return UpdateAttendanceRequest{
		Date:     a.Date.String(),
		Status:   string(a.Status),
		WorkDone: a.WorkDone,
	}
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(Statuses, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Patch validates the draft and converts it to the patch sent to the records service.
func (r UpdateAttendanceRequest) Patch() (AttendancePatch, error) {
	if err := r.Validate(); err != nil {
		return AttendancePatch{}, err
	}
	return AttendancePatch{
		Date:     calendar.MustParse(r.Date),
		Status:   Status(r.Status),
		WorkDone: r.WorkDone,
	}, nil
}

// ChangeAttendanceDraftRequest changes individual draft fields; nil fields are kept.
type ChangeAttendanceDraftRequest struct {
	Date     *string `json:"date,omitempty"`
	Status   *string `json:"status,omitempty"`
	WorkDone *string `json:"workDone,omitempty"`
}

func (r ChangeAttendanceDraftRequest) ApplyTo(draft *UpdateAttendanceRequest) {
	if r.Date != nil {
		draft.Date = *r.Date
	}
	if r.Status != nil {
		draft.Status = *r.Status
	}
	if r.WorkDone != nil {
		draft.WorkDone = *r.WorkDone
	}
}

// AttendancePatch overwrites date, status and work done of a record.
type AttendancePatch struct {
	Date     calendar.Date `json:"date"`
	Status   Status        `json:"status"`
	WorkDone string        `json:"workDone"`
}

func (p AttendancePatch) Apply(a Attendance) Attendance {
	a.Date = p.Date
	a.Status = p.Status
	a.WorkDone = p.WorkDone
	return a
}

// AttendanceResponse is one row of the attendance table.
type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id,omitempty"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	WorkDone     string `json:"work_done"`
}

// NewAttendanceResponse renders a record; name is the already resolved employee name.
func NewAttendanceResponse(a Attendance, name string) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.Employee.ID,
		EmployeeName: name,
		Date:         a.Date.String(),
		Status:       a.Status.Label(),
		WorkDone:     a.WorkDone,
	}
	if resp.Date == "" {
		resp.Date = employee.NotAvailable
	}
	if resp.WorkDone == "" {
		resp.WorkDone = employee.NotAvailable
	}
	return resp
}

// EditSnapshot is the state of the attendance edit form.
type EditSnapshot = record.EditSnapshot[UpdateAttendanceRequest]
