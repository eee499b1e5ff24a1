package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteSuccess writes the standard success envelope. Extra resource
// fields are merged alongside success and message.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, extras map[string]interface{}) {
	body := map[string]interface{}{
		"success": true,
		"message": message,
	}
	for k, v := range extras {
		body[k] = v
	}
	writeJSON(w, statusCode, body)
}

// WriteError writes the standard failure envelope
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// WriteServerError writes a failure envelope carrying the underlying
// error detail, per the server-error propagation policy
func WriteServerError(w http.ResponseWriter, message string, err error) {
	body := map[string]interface{}{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}

func writeJSON(w http.ResponseWriter, statusCode int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
