package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/repo"
)

// ActingUserHeader names the caller. There is no session layer; admin-only
// routes resolve this header against the users collection.
const ActingUserHeader = "X-User-Email"

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// readJSON decodes the request body strictly: unknown fields and trailing
// data are rejected so authoring mistakes surface instead of persisting.
func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return false
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: trailing data")
		return false
	}
	return true
}

func actingUser(users repo.Users, r *http.Request) (domain.User, bool) {
	email := strings.TrimSpace(r.Header.Get(ActingUserHeader))
	if email == "" {
		return domain.User{}, false
	}
	return users.FindByEmail(email)
}

// requireAdmin writes the error response itself when the caller is missing
// or not an admin.
func requireAdmin(users repo.Users, w http.ResponseWriter, r *http.Request) bool {
	u, ok := actingUser(users, r)
	if !ok {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "set "+ActingUserHeader+" to a known account")
		return false
	}
	if !u.IsAdmin {
		WriteError(w, r, http.StatusForbidden, "forbidden", "admin account required")
		return false
	}
	return true
}
