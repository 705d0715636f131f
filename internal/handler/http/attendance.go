package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Edit form
	GetEdit(w http.ResponseWriter, r *http.Request)
	StartEdit(w http.ResponseWriter, r *http.Request)
	ChangeEdit(w http.ResponseWriter, r *http.Request)
	SubmitEdit(w http.ResponseWriter, r *http.Request)
	CancelEdit(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List handles GET /attendance
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Create handles POST /attendance
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", created)
}

// Delete handles DELETE /attendance/{id}
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

// GetEdit handles GET /attendance/edit
func (h *attendanceHandlerImpl) GetEdit(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.attendanceService.EditState(r.Context()))
}

// StartEdit handles POST /attendance/{id}/edit
func (h *attendanceHandlerImpl) StartEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	snapshot, err := h.attendanceService.StartEdit(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// ChangeEdit handles PATCH /attendance/edit
func (h *attendanceHandlerImpl) ChangeEdit(w http.ResponseWriter, r *http.Request) {
	var req attendance.ChangeAttendanceDraftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangeAttendanceEdit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	snapshot, err := h.attendanceService.ChangeEdit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// SubmitEdit handles POST /attendance/edit/submit
func (h *attendanceHandlerImpl) SubmitEdit(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.attendanceService.SubmitEdit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated successfully", snapshot)
}

// CancelEdit handles DELETE /attendance/edit
func (h *attendanceHandlerImpl) CancelEdit(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.attendanceService.CancelEdit(r.Context()))
}
