package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/gateway"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Lookups in the local copies
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Forms
	case errors.Is(err, leave.ErrNoEmployeeSelected):
		BadRequest(w, leave.ErrNoEmployeeSelected.Error(), nil)
	case errors.Is(err, leave.ErrSubmitInFlight):
		Conflict(w, leave.ErrSubmitInFlight.Error())
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, leave.ErrLeaveAlreadyProcessed.Error())
	case errors.Is(err, record.ErrSubmitInFlight):
		Conflict(w, "Changes are already being saved")
	case errors.Is(err, record.ErrNotEditing):
		Conflict(w, "No record is being edited")

	// Records service
	case gateway.IsNotFound(err):
		NotFound(w, "Record not found in the records service")
	case errors.Is(err, record.ErrFetch):
		BadGateway(w, "Failed to load records")
	case errors.Is(err, record.ErrCreate):
		BadGateway(w, "Failed to create record")
	case errors.Is(err, record.ErrUpdate):
		BadGateway(w, "Failed to update record")
	case errors.Is(err, record.ErrDelete):
		BadGateway(w, "Failed to delete record")
	case errors.Is(err, report.ErrDownloadFailed):
		BadGateway(w, "Failed to download attendance report")

	// Files
	case errors.Is(err, storage.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, "Invalid file name", nil)
	case errors.Is(err, report.ErrExportFailed):
		InternalServerError(w, "Failed to export weekly attendance")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
