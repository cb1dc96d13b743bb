package httpapi

import (
	"encoding/json"
	"net/http"
)

// APIError is the envelope every failed request returns: a stable machine
// code (email_taken, not_found, ...) plus a human message, with the request
// id echoed so a log line can be found from a client-side report.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

// WriteJSON writes v with an explicit status. Handlers answering plain 200s
// use the lowercase writeJSON helper instead.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responds with an APIError envelope, pulling the request id from
// the request context.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
