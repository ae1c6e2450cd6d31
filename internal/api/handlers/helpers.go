// Shared JSON helpers for the handlers package.
package handlers

import (
	"encoding/json"
	"net/http"
)

const (
	headerContentType = "Content-Type"
	mimeJSON          = "application/json"
)

// errorResponse is the uniform error body. Retry is a pointer so the field is
// emitted only for the classes where a hint is meaningful (404/503).
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Retry   *bool  `json:"retry,omitempty"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set(headerContentType, mimeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

// writeError writes a JSON error response with just a message.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}

// writeErrorDetails writes a JSON error response with diagnostic detail and a
// retry hint.
func writeErrorDetails(w http.ResponseWriter, statusCode int, message, details string, retry bool) {
	writeJSON(w, statusCode, errorResponse{Error: message, Details: details, Retry: &retry})
}
