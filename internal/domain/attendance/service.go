package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ListAttendance returns display rows, loading the collection on first use
	ListAttendance(ctx context.Context) ([]AttendanceResponse, error)

	// RecordAttendance creates a daily attendance entry
	RecordAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance deletes a record and drops it from the local copy
	DeleteAttendance(ctx context.Context, id string) error

	// StartEdit loads a record into the edit form, replacing any previous draft
	StartEdit(ctx context.Context, id string) (EditSnapshot, error)

	// ChangeEdit changes draft fields of the active edit
	ChangeEdit(ctx context.Context, req ChangeAttendanceDraftRequest) (EditSnapshot, error)

	// SubmitEdit sends the draft; on failure the draft is kept
	SubmitEdit(ctx context.Context) (EditSnapshot, error)

	// CancelEdit discards the draft without touching the records
	CancelEdit(ctx context.Context) EditSnapshot

	// EditState returns the current edit form state
	EditState(ctx context.Context) EditSnapshot
}
