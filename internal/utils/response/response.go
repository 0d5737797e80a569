// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every endpoint answers with the same envelope the registration form
// expects: a success flag plus an optional human-readable message.
// Centralising the three-line dance (set header, set status, encode)
// keeps handlers short and the wire format uniform.
package response

import (
	"encoding/json"
	"net/http"
)

// Response is the standard envelope.
//
// Error responses are always exactly this shape:
//
//	{ "success": false, "message": "Invalid email format" }
//
// Success responses embed it and add their own fields (a student, a
// list) alongside success/message.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON-encoded response with the given HTTP status
// code. data may be any encodable value.
//
// Header() → WriteHeader() → body, in that order: once the status line
// is written the headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

// Error wraps a client-facing message into the envelope. The message
// is shown to users and substring-matched by the form script, so keep
// it human-readable and never include internal error detail.
func Error(message string) Response {
	return Response{Success: false, Message: message}
}
