// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"articles-api/internal/domain/entity"
)

// ErrorBody is the generic error payload.
type ErrorBody struct {
	Error string `json:"error"`
}

// DuplicateBody is returned with 409 Conflict.
type DuplicateBody struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

// ValidationBody is returned with 422 Unprocessable Entity.
type ValidationBody struct {
	Error       string `json:"error"`
	FieldErrors string `json:"field_errors"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorBody{Error: err.Error()})
}

// SafeError sanitizes error messages before returning them to users.
// 5xx errors and messages without a recognized user-facing phrase are logged
// and replaced with "internal server error".
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	safeErrors := []string{
		"required",
		"invalid",
		"not found",
		"already exists",
		"must be",
		"malformed",
		"too long",
		"too short",
	}

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, ErrorBody{Error: msg})
		return
	}
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, ErrorBody{Error: "internal server error"})
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// BadRequest wraps err as a 400 with msg shown to the client.
func BadRequest(msg string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, msg, err)
}

// ReadError writes err for a read path, where a missing entity is a 404.
func ReadError(w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrNotFound) {
		JSON(w, http.StatusNotFound, ErrorBody{Error: err.Error()})
		return
	}
	WriteError(w, err)
}

// WriteError writes err for a mutating path. Domain errors get their
// dedicated status; a missing entity here is an internal error.
func WriteError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	var dup *entity.DuplicateError
	var verrs entity.ValidationErrors

	switch {
	case errors.As(err, &appErr):
		if appErr.Err != nil {
			slog.Default().Info("request rejected",
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, ErrorBody{Error: appErr.UserMsg})
	case errors.As(err, &dup):
		JSON(w, http.StatusConflict, DuplicateBody{Error: "duplicate_field", Field: dup.Field})
	case errors.As(err, &verrs):
		JSON(w, http.StatusUnprocessableEntity, ValidationBody{Error: "validation_field", FieldErrors: verrs.Error()})
	case errors.Is(err, entity.ErrAccessDenied):
		JSON(w, http.StatusForbidden, ErrorBody{Error: "access denied"})
	default:
		SafeError(w, http.StatusInternalServerError, err)
	}
}
