// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler translates application errors into HTTP responses with
// standardized logging.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// errorBody is the wire shape for error responses. Only the message field is
// exposed to clients.
type errorBody struct {
	Message string `json:"message"`
}

// WriteError normalizes err, logs it, and writes the JSON error body.
func (h *ErrorHandler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := h.normalizeError(err)

	h.logError(r, apiErr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	_ = json.NewEncoder(w).Encode(errorBody{Message: apiErr.Message})
}

// normalizeError ensures we always have an APIError
func (h *ErrorHandler) normalizeError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{
		Code:      ErrCodeUpstreamFailed,
		Message:   "Internal server error",
		Details:   err.Error(),
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(r *http.Request, apiErr *APIError) {
	fields := map[string]interface{}{
		"method":    r.Method,
		"path":      r.URL.Path,
		"errorCode": string(apiErr.Code),
		"message":   apiErr.Message,
		"status":    apiErr.Status,
	}
	if apiErr.Details != "" {
		fields["details"] = apiErr.Details
	}

	if IsClientError(apiErr) {
		h.logger.Warn("Request rejected", fields)
		return
	}
	h.logger.Error("Request failed", fields)
}
