package domain

import "errors"

// Error kinds. Callers wrap them with fmt.Errorf("%w: ...") to add context
// and classify them with errors.Is.
var (
	// ErrNotFound means the referenced employee id does not exist.
	ErrNotFound = errors.New("employee not found")
	// ErrNoDataForMonth means the employee exists but has no salary for the requested month.
	ErrNoDataForMonth = errors.New("no salary data for month")
	// ErrInvalidRequest means a required parameter or field is missing or malformed.
	ErrInvalidRequest = errors.New("invalid request")
)
