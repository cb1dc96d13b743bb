package httpapi

import (
	"net/http"
	"strings"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/events"
	"localjobs-engine/internal/remote"
)

type JobsHandler struct {
	D Deps
}

// List returns local jobs merged with the cached remote snapshot. Local
// records come first and are never displaced; the remote portion is capped
// by config. With remote disabled this is just the stored collection.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	local := h.D.Repos.Jobs.LoadAll()

	cfg := h.D.cfg()
	if cfg.Remote.Enabled && h.D.Remote != nil {
		writeJSON(w, remote.Merge(local, h.D.Remote.Snapshot(), cfg.Remote.MaxJobs))
		return
	}
	writeJSON(w, local)
}

type jobCreate struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
}

func (h JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(h.D.Repos.Users, w, r) {
		return
	}

	var in jobCreate
	if !readJSON(w, r, &in) {
		return
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	if in.Title == "" || in.Company == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "title and company are required")
		return
	}

	job, err := h.D.Repos.Jobs.Add(domain.Job{
		Title:       in.Title,
		Company:     in.Company,
		Description: strings.TrimSpace(in.Description),
		Salary:      strings.TrimSpace(in.Salary),
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.D.Hub.Publish(events.MakeEvent(reqID, events.TypeJobCreated, 1, map[string]any{"id": job.ID}))
	WriteJSON(w, http.StatusCreated, job)
}

// GetByPath serves GET /jobs/{id} and GET /jobs/{id}/applicants.
func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/jobs/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		job, ok := h.D.Repos.Jobs.FindByID(parts[0])
		if !ok {
			WriteError(w, r, http.StatusNotFound, "not_found", "no job with that id")
			return
		}
		writeJSON(w, job)

	case len(parts) == 2 && parts[1] == "applicants":
		if !requireAdmin(h.D.Repos.Users, w, r) {
			return
		}
		if _, ok := h.D.Repos.Jobs.FindByID(parts[0]); !ok {
			WriteError(w, r, http.StatusNotFound, "not_found", "no job with that id")
			return
		}
		applicants := h.D.Repos.Applications.GetApplicants(parts[0])
		if applicants == nil {
			applicants = []string{}
		}
		writeJSON(w, applicants)

	default:
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown jobs path")
	}
}

type applyRequest struct {
	Email string `json:"email"`
}

// PostByPath serves POST /jobs/{id}/apply. Applying twice with the same
// email is a no-op by contract.
func (h JobsHandler) PostByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/jobs/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "apply" {
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown jobs path")
		return
	}
	jobID := parts[0]

	var in applyRequest
	if !readJSON(w, r, &in) {
		return
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "email is required")
		return
	}

	if _, ok := h.D.Repos.Jobs.FindByID(jobID); !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "no job with that id")
		return
	}

	if err := h.D.Repos.Applications.AddApplicant(jobID, in.Email); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.D.Hub.Publish(events.MakeEvent(reqID, events.TypeApplicationCreated, 1,
		map[string]any{"jobId": jobID, "email": in.Email}))
	writeJSON(w, map[string]any{"ok": true, "jobId": jobID})
}
