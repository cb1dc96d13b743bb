package repo

import (
	"github.com/google/uuid"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/store"
)

type Jobs struct {
	S *store.Store
}

func (r Jobs) LoadAll() []domain.Job {
	return decodeAll[domain.Job](jobsCollection, r.S.Load(jobsCollection))
}

func (r Jobs) SaveAll(jobs []domain.Job) error {
	recs, err := encodeAll(jobs)
	if err != nil {
		return err
	}
	return r.S.Save(jobsCollection, recs)
}

// Add appends the job, generating an id when the caller left it empty, and
// returns the stored record.
func (r Jobs) Add(j domain.Job) (domain.Job, error) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.Salary == "" {
		j.Salary = domain.DefaultSalary
	}
	return j, appendRecord(r.S, jobsCollection, j)
}

func (r Jobs) FindByID(id string) (domain.Job, bool) {
	for _, j := range r.LoadAll() {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}
