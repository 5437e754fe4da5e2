package selection

import "fmt"

// ValidationError reports bad or missing user input. The targeted entry is
// left unchanged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// ResolutionError reports a course reference that does not resolve in the
// current catalog snapshot. Never fatal: callers degrade to a placeholder
// display instead of dropping the entry.
type ResolutionError struct {
	CourseID string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("course %s not found in catalog snapshot", e.CourseID)
}

// PersistenceError reports a failed catalog write. The operation is
// all-or-nothing: selection state is untouched when this is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
