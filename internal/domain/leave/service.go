package leave

import (
	"context"
)

// LeaveService defines the review side: listing, editing, approving and deleting requests.
type LeaveService interface {
	ListLeaves(ctx context.Context) ([]LeaveResponse, error)
	DeleteLeave(ctx context.Context, id string) error

	// ApproveLeave and DeclineLeave only change the status
	ApproveLeave(ctx context.Context, id string) (LeaveResponse, error)
	DeclineLeave(ctx context.Context, id string) (LeaveResponse, error)

	StartEdit(ctx context.Context, id string) (EditSnapshot, error)
	ChangeEdit(ctx context.Context, req ChangeLeaveDraftRequest) (EditSnapshot, error)
	SubmitEdit(ctx context.Context) (EditSnapshot, error)
	CancelEdit(ctx context.Context) EditSnapshot
	EditState(ctx context.Context) EditSnapshot
}

// RequestWorkflow is the new leave request form: pick an employee, fill the
// draft, submit.
type RequestWorkflow interface {
	// SelectEmployee resolves the employee; an unknown id clears the selection
	SelectEmployee(ctx context.Context, id string) RequestState

	ChangeDraft(ctx context.Context, req ChangeRequestDraftRequest) RequestState

	// Submit creates the leave request and resets the draft on success
	Submit(ctx context.Context) (RequestState, error)

	State(ctx context.Context) RequestState
}
