package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Refresh reloads every collection concurrently
	Refresh(ctx context.Context) (*RefreshResponse, error)

	// GetWeeklyAttendance aggregates the attendance collection per weekday
	GetWeeklyAttendance(ctx context.Context) (*WeeklyAttendanceResponse, error)
}
