package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/gateway"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/storage"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Downloader streams a file from the records service.
type Downloader interface {
	Download(ctx context.Context, path string) (io.ReadCloser, string, error)
}

type ReportServiceImpl struct {
	downloader       Downloader
	storage          storage.FileStorage
	dashboardService dashboard.DashboardService
	attendanceFile   string
	now              func() time.Time

	mu         sync.Mutex
	lastExport string
}

func NewReportService(
	downloader Downloader,
	fileStorage storage.FileStorage,
	dashboardService dashboard.DashboardService,
	attendanceFile string,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		downloader:       downloader,
		storage:          fileStorage,
		dashboardService: dashboardService,
		attendanceFile:   attendanceFile,
		now:              time.Now,
	}
}

var _ report.ReportService = (*ReportServiceImpl)(nil)

// DownloadAttendancePDF saves the PDF rendered by the records service under
// the configured file name, replacing the previous download.
func (s *ReportServiceImpl) DownloadAttendancePDF(ctx context.Context) (*report.ExportResponse, error) {
	body, contentType, err := s.downloader.Download(ctx, gateway.PathAttendanceDownload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrDownloadFailed, err)
	}
	defer body.Close()

	size, err := s.storage.Save(ctx, body, s.attendanceFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrDownloadFailed, err)
	}

	if contentType == "" {
		contentType = contentTypePDF
	}
	slog.Info("attendance report downloaded", "file", s.attendanceFile, "size", size)

	return &report.ExportResponse{
		FileName:    s.attendanceFile,
		URL:         s.storage.URL(s.attendanceFile),
		ContentType: contentType,
		Size:        size,
	}, nil
}

// ExportWeeklyAttendance writes the weekly chart data to a new spreadsheet
// and removes the one written by the previous export.
func (s *ReportServiceImpl) ExportWeeklyAttendance(ctx context.Context) (*report.ExportResponse, error) {
	weekly, err := s.dashboardService.GetWeeklyAttendance(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	buf, err := weeklyWorkbook(weekly, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrExportFailed, err)
	}

	fileName := fmt.Sprintf("weekly_attendance_%s.xlsx", now.Format("20060102-150405"))
	size, err := s.storage.Save(ctx, buf, fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrExportFailed, err)
	}
	slog.Info("weekly attendance exported", "file", fileName, "size", size)

	s.mu.Lock()
	previous := s.lastExport
	s.lastExport = fileName
	s.mu.Unlock()

	if previous != "" && previous != fileName {
		if err := s.storage.Delete(ctx, previous); err != nil {
			slog.Warn("failed to remove previous export", "file", previous, "error", err)
		}
	}

	return &report.ExportResponse{
		FileName:    fileName,
		URL:         s.storage.URL(fileName),
		ContentType: contentTypeXLSX,
		Size:        size,
	}, nil
}
