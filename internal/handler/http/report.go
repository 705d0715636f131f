package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
)

type ReportHandler interface {
	// DownloadAttendance saves the attendance PDF and returns where to fetch it
	DownloadAttendance(w http.ResponseWriter, r *http.Request)
	// ExportWeeklyAttendance writes the weekly summary spreadsheet
	ExportWeeklyAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// DownloadAttendance handles POST /attendance/download
func (h *reportHandlerImpl) DownloadAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DownloadAttendancePDF(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance report downloaded", result)
}

// ExportWeeklyAttendance handles POST /attendance/export-weekly
func (h *reportHandlerImpl) ExportWeeklyAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ExportWeeklyAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly attendance exported", result)
}
