package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that an entity required by the operation does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate indicates a uniqueness violation on a user identity field.
	ErrDuplicate = errors.New("duplicate field")

	// ErrValidationFailed indicates that input failed field constraints.
	ErrValidationFailed = errors.New("validation failed")

	// ErrAccessDenied indicates that the principal may not perform the action.
	ErrAccessDenied = errors.New("access denied")
)

// DuplicateError names the field whose value is already taken.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// Is makes errors.Is(err, ErrDuplicate) hold for every DuplicateError.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// NewDuplicateError returns a DuplicateError for field.
func NewDuplicateError(field string) error {
	return &DuplicateError{Field: field}
}

// ValidationError represents a validation error with detailed field information.
type ValidationError struct {
	Field   string
	Message string
}

// Error renders the error as "field:message".
func (e *ValidationError) Error() string {
	return e.Field + ":" + e.Message
}

// ValidationErrors collects every field violation found in one input.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for i := range e {
		parts = append(parts, e[i].Error())
	}
	return strings.Join(parts, "; ")
}

func (e ValidationErrors) Is(target error) bool { return target == ErrValidationFailed }

// AccessDeniedError is raised by the authorization layer before a mutating
// operation runs.
type AccessDeniedError struct {
	Action   string
	Resource string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: %s %s", e.Action, e.Resource)
}

func (e *AccessDeniedError) Is(target error) bool { return target == ErrAccessDenied }
