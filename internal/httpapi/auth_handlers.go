package httpapi

import (
	"net/http"
	"strings"

	"localjobs-engine/internal/auth"
	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/events"
	"localjobs-engine/internal/repo"
)

type AuthHandler struct {
	Repos repo.Repos
	Hub   *events.Hub
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register appends a new user and their empty profile. Uniqueness is checked
// here, not in the repository: a case-insensitive scan over the existing
// users, the way the original registration flow does it.
func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if !readJSON(w, r, &in) {
		return
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "email and password are required")
		return
	}

	if _, exists := h.Repos.Users.FindByEmail(in.Email); exists {
		WriteError(w, r, http.StatusConflict, "email_taken", "email already registered")
		return
	}

	u := domain.User{Email: in.Email, Password: in.Password}
	if err := h.Repos.Users.Add(u); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage", err.Error())
		return
	}
	if err := h.Repos.Profiles.Upsert(domain.Profile{Email: in.Email}); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeUserRegistered, 1, map[string]any{"email": u.Email}))
	WriteJSON(w, http.StatusCreated, u)
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if !readJSON(w, r, &in) {
		return
	}

	u, ok := auth.Authenticate(h.Repos.Users, in.Email, in.Password)
	if !ok {
		WriteError(w, r, http.StatusUnauthorized, "invalid_credentials", "email or password is wrong")
		return
	}
	writeJSON(w, u)
}
