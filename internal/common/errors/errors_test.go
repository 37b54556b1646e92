package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger captures log calls for assertions.
type testLogger struct {
	errorCalls int
	warnCalls  int
}

func (l *testLogger) Error(msg string, fields map[string]interface{}) { l.errorCalls++ }
func (l *testLogger) Warn(msg string, fields map[string]interface{})  { l.warnCalls++ }

func TestMissingQueryErrorIs400(t *testing.T) {
	err := NewMissingQueryError("q")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Contains(t, err.Message, "'q'")
	assert.True(t, IsClientError(err))
}

func TestSessionNotFoundErrorMessage(t *testing.T) {
	err := NewSessionNotFoundError("abc-123")

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Chat session not found", err.Message)
}

func TestUpstreamErrorUsesUnderlyingMessage(t *testing.T) {
	err := NewUpstreamError(fmt.Errorf("connection refused"), "generic fallback")

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "connection refused", err.Message)
}

func TestUpstreamErrorFallsBackWhenNilError(t *testing.T) {
	err := NewUpstreamError(nil, "generic fallback")

	assert.Equal(t, "generic fallback", err.Message)
}

func TestEmptyResponseErrorIs500(t *testing.T) {
	err := NewEmptyResponseError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "No response from chat session", err.Message)
	assert.False(t, IsClientError(err))
}

func TestHTTPStatusDefaultsTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("plain error")))
}

func TestWriteErrorBodyOnlyExposesMessage(t *testing.T) {
	handler := NewErrorHandler(&testLogger{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)

	handler.WriteError(rec, req, NewSessionNotFoundError("abc-123"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Chat session not found", body["message"])
	assert.NotContains(t, body, "details")
	assert.NotContains(t, body, "code")
}

func TestWriteErrorNormalizesPlainErrors(t *testing.T) {
	log := &testLogger{}
	handler := NewErrorHandler(log)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)

	handler.WriteError(rec, req, fmt.Errorf("something broke internally"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, log.errorCalls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["message"])
}

func TestWriteErrorLogsClientErrorsAsWarnings(t *testing.T) {
	log := &testLogger{}
	handler := NewErrorHandler(log)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/follow-up", nil)

	handler.WriteError(rec, req, NewInvalidBodyError("Both sessionId and query are required", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, log.warnCalls)
	assert.Equal(t, 0, log.errorCalls)
}
