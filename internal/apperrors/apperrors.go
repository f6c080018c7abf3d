package apperrors

import (
	"errors"
	"fmt"
)

var (
	// Authentication errors
	UnauthenticatedError = errors.New("you must be authenticated to access this resource")
	ForbiddenError       = errors.New("you do not have permission to perform this action")

	// User errors
	UserNotFoundError    = errors.New("user not found")
	InvalidEmailError    = errors.New("invalid email address")
	DeleteUserError      = errors.New("an error occurred while deleting user")
	SessionNotFoundError = errors.New("session not found")

	// Course errors
	CourseNotFoundError = errors.New("course not found")

	// Course resource errors
	MaterialNotFoundError     = errors.New("course material not found")
	AssignmentNotFoundError   = errors.New("assignment not found")
	SubmissionNotFoundError   = errors.New("submission not found")
	GradeNotFoundError        = errors.New("grade not found")
	NotificationNotFoundError = errors.New("notification not found")
	MessageNotFoundError      = errors.New("message not found")
	NewsNotFoundError         = errors.New("news item not found")
)

// ConflictError reports a business-invariant violation, such as enrolling a
// student twice or making a second news item visible. ConflictingID carries
// the id of the record that caused the conflict so clients can act on it.
type ConflictError struct {
	Message       string
	ConflictingID string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError builds a ConflictError referencing the conflicting record.
func NewConflictError(message, conflictingID string) *ConflictError {
	return &ConflictError{Message: message, ConflictingID: conflictingID}
}

// ValidationError reports malformed or missing input fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

var notFoundErrors = []error{
	UserNotFoundError,
	SessionNotFoundError,
	CourseNotFoundError,
	MaterialNotFoundError,
	AssignmentNotFoundError,
	SubmissionNotFoundError,
	GradeNotFoundError,
	NotificationNotFoundError,
	MessageNotFoundError,
	NewsNotFoundError,
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
