// Package jsonapi provides JSON response helpers and an error logger for
// HTTP handlers. Client-facing error bodies carry only a short message;
// internal detail (the underlying error, the request path) goes to the
// structured log and is never returned to the client.
package jsonapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message string `json:"message"`
}

// Respond writes v as a JSON response with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, errorBody{Message: msg})
}

// Decode reads a JSON request body into v. Returns false (after writing a
// 400 response) if the body is missing or malformed.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// ErrorLogger writes client-safe JSON error responses while logging the
// internal cause. Handlers hold one and use it for every failure path that
// has an underlying error worth recording.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger backed by the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// BadRequest logs the internal message and error, then responds 400 with
// the client message.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, r *http.Request, internalMsg string, err error, clientMsg string) {
	e.log.Warn(internalMsg, zap.String("path", r.URL.Path), zap.Error(err))
	Error(w, http.StatusBadRequest, clientMsg)
}

// Internal logs the internal message and error, then responds 500 with a
// generic message. The underlying error never reaches the client.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, internalMsg string, err error) {
	e.log.Error(internalMsg, zap.String("path", r.URL.Path), zap.Error(err))
	Error(w, http.StatusInternalServerError, "Internal Server Error")
}
