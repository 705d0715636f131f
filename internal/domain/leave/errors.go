package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("Leave request not found")
	ErrNoEmployeeSelected    = errors.New("Select an employee before submitting a leave request")
	ErrSubmitInFlight        = errors.New("Leave request is already being submitted")
	ErrLeaveAlreadyProcessed = errors.New("Leave request has already been approved or declined")
)
