package repo

import (
	"encoding/json"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/store"
)

type Applications struct {
	S *store.Store
}

func (r Applications) LoadAll() []domain.Application {
	return decodeAll[domain.Application](applicationsCollection, r.S.Load(applicationsCollection))
}

func (r Applications) SaveAll(apps []domain.Application) error {
	recs, err := encodeAll(apps)
	if err != nil {
		return err
	}
	return r.S.Save(applicationsCollection, recs)
}

// AddApplicant records email against jobID. The link is created lazily on
// first apply; a second apply with the same email (any casing) is a no-op.
func (r Applications) AddApplicant(jobID, email string) error {
	return r.S.Update(applicationsCollection, func(recs []json.RawMessage) ([]json.RawMessage, error) {
		apps := decodeAll[domain.Application](applicationsCollection, recs)
		found := false
		for i := range apps {
			if apps[i].JobID != jobID {
				continue
			}
			found = true
			if !apps[i].HasApplicant(email) {
				apps[i].Applicants = append(apps[i].Applicants, email)
			}
			break
		}
		if !found {
			apps = append(apps, domain.Application{JobID: jobID, Applicants: []string{email}})
		}
		return encodeAll(apps)
	})
}

// GetApplicants returns the applicant emails for jobID, empty when no link
// exists yet.
func (r Applications) GetApplicants(jobID string) []string {
	for _, a := range r.LoadAll() {
		if a.JobID == jobID {
			return a.Applicants
		}
	}
	return nil
}
