// Package errors provides the standardized error taxonomy for the HTTP API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeMissingQuery    ErrorCode = "MISSING_QUERY"
	ErrCodeInvalidBody     ErrorCode = "INVALID_REQUEST_BODY"
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"

	ErrCodeUpstreamFailed ErrorCode = "UPSTREAM_FAILED"
	ErrCodeEmptyResponse  ErrorCode = "EMPTY_RESPONSE"

	ErrCodeConfigMissing ErrorCode = "CONFIG_MISSING"
)

// APIError represents a structured application error that maps directly to an
// HTTP response. Message is the only part exposed to callers; Details stays in
// logs.
type APIError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Status    int       `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewMissingQueryError creates a 400 error for an absent or empty query parameter.
func NewMissingQueryError(param string) *APIError {
	return &APIError{
		Code:      ErrCodeMissingQuery,
		Message:   fmt.Sprintf("Query parameter '%s' is required", param),
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidBodyError creates a 400 error describing the missing or malformed fields.
func NewInvalidBodyError(message, details string) *APIError {
	return &APIError{
		Code:      ErrCodeInvalidBody,
		Message:   message,
		Details:   details,
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a 404 error for an unknown session identifier.
func NewSessionNotFoundError(sessionID string) *APIError {
	return &APIError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Chat session not found",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Status:    http.StatusNotFound,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError creates a 500 error whose message is the underlying
// failure's description when available, else the per-endpoint fallback.
func NewUpstreamError(err error, fallback string) *APIError {
	message := fallback
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &APIError{
		Code:      ErrCodeUpstreamFailed,
		Message:   message,
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyResponseError creates a 500 error for a response with no usable content.
func NewEmptyResponseError() *APIError {
	return &APIError{
		Code:      ErrCodeEmptyResponse,
		Message:   "No response from chat session",
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigMissingError creates a startup configuration error. The server must
// never start without the value it names.
func NewConfigMissingError(name string) *APIError {
	return &APIError{
		Code:      ErrCodeConfigMissing,
		Message:   fmt.Sprintf("Missing %s in environment variables", name),
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// HTTPStatus returns the status code for any error, defaulting to 500.
func HTTPStatus(err error) int {
	if apiErr, ok := err.(*APIError); ok && apiErr.Status != 0 {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the error maps to a 4xx response.
func IsClientError(err error) bool {
	status := HTTPStatus(err)
	return status >= 400 && status < 500
}
