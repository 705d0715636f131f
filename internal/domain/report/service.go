package report

import "context"

type ReportService interface {
	// DownloadAttendancePDF fetches the attendance PDF from the records service and saves it
	DownloadAttendancePDF(ctx context.Context) (*ExportResponse, error)

	// ExportWeeklyAttendance writes the weekly attendance summary as a spreadsheet
	ExportWeeklyAttendance(ctx context.Context) (*ExportResponse, error)
}
