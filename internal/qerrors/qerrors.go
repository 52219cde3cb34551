package qerrors

import (
	"errors"
	"fmt"
)

var (
	// Course errors
	CourseNotFoundError = errors.New("course not found")
	InvalidBody         = errors.New("the request body is not valid")
	MissingCourseID     = errors.New("missing course ID")

	// Session errors
	SessionNotFoundError = errors.New("no session")
	SessionExpiredError  = errors.New("session expired")
	InvalidSessionError  = errors.New("invalid session")

	// Request errors
	CrossSiteRequestError = errors.New("cross-site request rejected")
)

// RepositoryError is returned by every failed backend call. Op names the repository operation.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError wraps err, keeping nil as nil.
func NewRepositoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{Op: op, Err: err}
}

// ValidationError reports a course field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// IsNotFound reports whether err is, or wraps, CourseNotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, CourseNotFoundError)
}
