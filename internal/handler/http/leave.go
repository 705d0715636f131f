package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	DeclineRequest(w http.ResponseWriter, r *http.Request)

	// Edit form
	GetEdit(w http.ResponseWriter, r *http.Request)
	StartEdit(w http.ResponseWriter, r *http.Request)
	ChangeEdit(w http.ResponseWriter, r *http.Request)
	SubmitEdit(w http.ResponseWriter, r *http.Request)
	CancelEdit(w http.ResponseWriter, r *http.Request)

	// New request form
	GetRequestForm(w http.ResponseWriter, r *http.Request)
	SelectEmployee(w http.ResponseWriter, r *http.Request)
	ChangeRequestForm(w http.ResponseWriter, r *http.Request)
	SubmitRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService    leave.LeaveService
	requestWorkflow leave.RequestWorkflow
}

func NewLeaveHandler(leaveService leave.LeaveService, requestWorkflow leave.RequestWorkflow) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService:    leaveService,
		requestWorkflow: requestWorkflow,
	}
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.ListLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// DeleteRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	if err := l.leaveService.DeleteLeave(r.Context(), requestID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	approved, err := l.leaveService.ApproveLeave(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", approved)
}

// DeclineRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	declined, err := l.leaveService.DeclineLeave(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request declined successfully", declined)
}

// GetEdit implements LeaveHandler.
func (l *LeaveHandlerImpl) GetEdit(w http.ResponseWriter, r *http.Request) {
	response.Success(w, l.leaveService.EditState(r.Context()))
}

// StartEdit implements LeaveHandler.
func (l *LeaveHandlerImpl) StartEdit(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	snapshot, err := l.leaveService.StartEdit(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// ChangeEdit implements LeaveHandler.
func (l *LeaveHandlerImpl) ChangeEdit(w http.ResponseWriter, r *http.Request) {
	var req leave.ChangeLeaveDraftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangeLeaveEdit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	snapshot, err := l.leaveService.ChangeEdit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// SubmitEdit implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitEdit(w http.ResponseWriter, r *http.Request) {
	snapshot, err := l.leaveService.SubmitEdit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", snapshot)
}

// CancelEdit implements LeaveHandler.
func (l *LeaveHandlerImpl) CancelEdit(w http.ResponseWriter, r *http.Request) {
	response.Success(w, l.leaveService.CancelEdit(r.Context()))
}

// GetRequestForm implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequestForm(w http.ResponseWriter, r *http.Request) {
	response.Success(w, l.requestWorkflow.State(r.Context()))
}

// SelectEmployee implements LeaveHandler.
func (l *LeaveHandlerImpl) SelectEmployee(w http.ResponseWriter, r *http.Request) {
	var req leave.SelectEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SelectEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	response.Success(w, l.requestWorkflow.SelectEmployee(r.Context(), req.EmployeeID))
}

// ChangeRequestForm implements LeaveHandler.
func (l *LeaveHandlerImpl) ChangeRequestForm(w http.ResponseWriter, r *http.Request) {
	var req leave.ChangeRequestDraftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangeRequestForm decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	response.Success(w, l.requestWorkflow.ChangeDraft(r.Context(), req))
}

// SubmitRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	state, err := l.requestWorkflow.Submit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, state.Message, state)
}
