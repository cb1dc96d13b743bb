package repo

import (
	"sort"

	"github.com/google/uuid"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/store"
)

type TestResults struct {
	S *store.Store
}

func (r TestResults) LoadAll() []domain.TestResult {
	return decodeAll[domain.TestResult](testResultsCollection, r.S.Load(testResultsCollection))
}

func (r TestResults) SaveAll(results []domain.TestResult) error {
	recs, err := encodeAll(results)
	if err != nil {
		return err
	}
	return r.S.Save(testResultsCollection, recs)
}

func (r TestResults) Add(res domain.TestResult) (domain.TestResult, error) {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	return res, appendRecord(r.S, testResultsCollection, res)
}

// FindByTestID returns the results for one test, most recent attempt first.
// The descending createdAt order is part of the contract; review screens
// rely on it.
func (r TestResults) FindByTestID(testID string) []domain.TestResult {
	var out []domain.TestResult
	for _, res := range r.LoadAll() {
		if res.TestID == testID {
			out = append(out, res)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
