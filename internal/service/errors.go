package service

import (
	"errors"
	"fmt"
)

// errMissingDependency indicates a service constructor was given a nil
// collaborator.
var errMissingDependency = errors.New("missing required dependency")

// ContentServiceError wraps errors from the content service with the
// operation that failed.
type ContentServiceError struct {
	// Operation is the operation that failed (e.g. "generate_text_post").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface.
func (e *ContentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("content service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ContentServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps err with operation context, passing nil through
// and leaving sentinel identity visible to errors.Is.
func newServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	var svcErr *ContentServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	return &ContentServiceError{Operation: operation, Message: message, Err: err}
}
