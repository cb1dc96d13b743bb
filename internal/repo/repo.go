package repo

import (
	"encoding/json"
	"log"

	"localjobs-engine/internal/store"
)

// Collection names; each maps to <dataDir>/<name>.json.
const (
	usersCollection        = "users"
	jobsCollection         = "jobs"
	profilesCollection     = "profiles"
	applicationsCollection = "applications"
	mockTestsCollection    = "mocktests"
	testResultsCollection  = "testresults"
)

// Repos bundles every repository over one record store for injection.
type Repos struct {
	Users        Users
	Jobs         Jobs
	Profiles     Profiles
	Applications Applications
	MockTests    MockTests
	TestResults  TestResults
}

func New(s *store.Store) Repos {
	return Repos{
		Users:        Users{S: s},
		Jobs:         Jobs{S: s},
		Profiles:     Profiles{S: s},
		Applications: Applications{S: s},
		MockTests:    MockTests{S: s},
		TestResults:  TestResults{S: s},
	}
}

// decodeAll maps raw records to entities. Malformed records are dropped, not
// raised: reads never fail past the repository boundary. Each drop is logged.
func decodeAll[T any](name string, recs []json.RawMessage) []T {
	out := make([]T, 0, len(recs))
	for i, r := range recs {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			log.Printf("[repo] dropping malformed record %d in %s: %v", i, name, err)
			continue
		}
		out = append(out, v)
	}
	return out
}

func encodeAll[T any](items []T) ([]json.RawMessage, error) {
	recs := make([]json.RawMessage, 0, len(items))
	for _, v := range items {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		recs = append(recs, b)
	}
	return recs, nil
}

func appendRecord[T any](s *store.Store, name string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Update(name, func(recs []json.RawMessage) ([]json.RawMessage, error) {
		return append(recs, b), nil
	})
}
