package record

import "errors"

// Failures of the records service, wrapped with the underlying cause.
var (
	ErrFetch  = errors.New("failed to load records")
	ErrCreate = errors.New("failed to create record")
	ErrUpdate = errors.New("failed to update record")
	ErrDelete = errors.New("failed to delete record")
)

// Edit session errors
var (
	ErrNotEditing     = errors.New("no record is being edited")
	ErrSubmitInFlight = errors.New("changes are already being saved")
)
