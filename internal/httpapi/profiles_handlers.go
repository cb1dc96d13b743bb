package httpapi

import (
	"net/http"
	"strings"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/repo"
)

type ProfilesHandler struct {
	Repos repo.Repos
}

// GetByPath serves GET /profiles/{email}.
func (h ProfilesHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimPrefix(r.URL.Path, "/profiles/")
	if email == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "email is required in the path")
		return
	}

	p, ok := h.Repos.Profiles.FindByEmail(email)
	if !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "no profile for that email")
		return
	}
	writeJSON(w, p)
}

type profileUpdate struct {
	Name       string `json:"name"`
	College    string `json:"college"`
	DOB        string `json:"dob"`
	CGPA       string `json:"cgpa"`
	ResumeLink string `json:"resumeLink"`
}

// PutByPath serves PUT /profiles/{email}: whole-record replacement keyed by
// the path email. dob and cgpa are stored as given, free text by contract.
func (h ProfilesHandler) PutByPath(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimPrefix(r.URL.Path, "/profiles/")
	if email == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "email is required in the path")
		return
	}
	if _, ok := h.Repos.Users.FindByEmail(email); !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "no user with that email")
		return
	}

	var in profileUpdate
	if !readJSON(w, r, &in) {
		return
	}

	p := domain.Profile{
		Email:      email,
		Name:       in.Name,
		College:    in.College,
		DOB:        in.DOB,
		CGPA:       in.CGPA,
		ResumeLink: in.ResumeLink,
	}
	if err := h.Repos.Profiles.Upsert(p); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage", err.Error())
		return
	}
	writeJSON(w, p)
}
