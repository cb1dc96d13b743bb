package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/events"
	"localjobs-engine/internal/repo"
	"localjobs-engine/internal/score"
)

type TestsHandler struct {
	Repos repo.Repos
	Hub   *events.Hub
}

func (h TestsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Repos.MockTests.LoadAll())
}

// Create validates an authored test and persists it whole. A test failing
// validation is never written; the errors go back to the author the way the
// config endpoint reports validation failures.
func (h TestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(h.Repos.Users, w, r) {
		return
	}

	var in domain.MockTest
	if !readJSON(w, r, &in) {
		return
	}
	in.ID = "" // ids are assigned here, not by the author

	normalized, vr := score.NormalizeAndValidate(in)
	if !vr.OK() {
		WriteJSON(w, http.StatusBadRequest, vr)
		return
	}

	test, err := h.Repos.MockTests.Add(normalized)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeTestCreated, 1, map[string]any{"id": test.ID}))
	WriteJSON(w, http.StatusCreated, test)
}

// GetByPath serves GET /tests/{id} and GET /tests/{id}/results.
func (h TestsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/tests/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		t, ok := h.Repos.MockTests.FindByID(parts[0])
		if !ok {
			WriteError(w, r, http.StatusNotFound, "not_found", "no test with that id")
			return
		}
		writeJSON(w, t)

	case len(parts) == 2 && parts[1] == "results":
		if !requireAdmin(h.Repos.Users, w, r) {
			return
		}
		if _, ok := h.Repos.MockTests.FindByID(parts[0]); !ok {
			WriteError(w, r, http.StatusNotFound, "not_found", "no test with that id")
			return
		}
		results := h.Repos.TestResults.FindByTestID(parts[0])
		if results == nil {
			results = []domain.TestResult{}
		}
		writeJSON(w, results)

	default:
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown tests path")
	}
}

type submitRequest struct {
	Email   string         `json:"email"`
	Answers map[string]int `json:"answers"`
}

// PostByPath serves POST /tests/{id}/submit: grade the submission, wrap it
// into a TestResult and persist it. The submitter must be a known account,
// mirroring the profile update check. Grading itself never touches storage.
func (h TestsHandler) PostByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/tests/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "submit" {
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown tests path")
		return
	}

	var in submitRequest
	if !readJSON(w, r, &in) {
		return
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		WriteError(w, r, http.StatusBadRequest, "validation", "email is required")
		return
	}
	if _, ok := h.Repos.Users.FindByEmail(in.Email); !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "no user with that email")
		return
	}

	t, ok := h.Repos.MockTests.FindByID(parts[0])
	if !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "no test with that id")
		return
	}

	att := score.Grade(t, in.Answers)
	result, err := h.Repos.TestResults.Add(domain.TestResult{
		ID:         uuid.NewString(),
		TestID:     t.ID,
		UserEmail:  in.Email,
		Score:      att.Score,
		MaxScore:   att.MaxScore,
		Percentage: att.Percentage,
		CreatedAt:  time.Now().UnixMilli(),
		Answers:    att.Answers,
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeResultCreated, 1,
		map[string]any{"id": result.ID, "testId": t.ID, "score": result.Score}))
	WriteJSON(w, http.StatusCreated, result)
}
