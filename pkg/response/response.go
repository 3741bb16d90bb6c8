// Package response writes the JSON envelope used by every API endpoint.
//
// Error responses carry a machine-readable reason string alongside the
// human-readable message; internal details are never surfaced to callers.
package response

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Reason  string      `json:"reason,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

// Error sends a JSON error response with a reason code and message.
func Error(w http.ResponseWriter, status int, reason, message string) {
	write(w, status, envelope{Status: status, Reason: reason, Message: message})
}

// ValidationError sends a 400 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, envelope{
		Status:  http.StatusBadRequest,
		Reason:  "validation_failed",
		Message: "Validation failed",
		Errors:  errs,
	})
}

// BadRequest sends a 400 with a reason and message.
func BadRequest(w http.ResponseWriter, reason, message string) {
	Error(w, http.StatusBadRequest, reason, message)
}

// Conflict sends a 400 for domain conflicts (insufficient stock, empty cart).
func Conflict(w http.ResponseWriter, reason, message string) {
	Error(w, http.StatusBadRequest, reason, message)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(w, http.StatusNotFound, "not_found", message)
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
}

// Internal sends a 500 with a generic body; details belong in the log only.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal_error", "Internal Server Error")
}
