package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes the envelope with the standard message for status.
func RespondError(w http.ResponseWriter, status int) {
	RespondErrorMessage(w, status, MessageFor(status))
}

// RespondErrorMessage writes the envelope with a custom client-safe message.
func RespondErrorMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest writes a 400 envelope.
func RespondBadRequest(w http.ResponseWriter) {
	RespondError(w, http.StatusBadRequest)
}

// RespondNotFound writes a 404 envelope.
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound)
}

// RespondMethodNotAllowed writes a 405 envelope.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed)
}

// RespondUnprocessable writes a 422 envelope.
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, http.StatusUnprocessableEntity)
}

// RespondInternalError writes a 500 envelope.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError)
}
