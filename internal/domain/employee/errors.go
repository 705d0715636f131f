package employee

import "errors"

var (
	// ErrEmployeeNotFound is returned when a referenced employee id cannot be
	// resolved. Views downgrade it to NotAvailable.
	ErrEmployeeNotFound = errors.New("employee not found")
)
