package repo

import (
	"github.com/google/uuid"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/store"
)

type MockTests struct {
	S *store.Store
}

func (r MockTests) LoadAll() []domain.MockTest {
	return decodeAll[domain.MockTest](mockTestsCollection, r.S.Load(mockTestsCollection))
}

func (r MockTests) SaveAll(tests []domain.MockTest) error {
	recs, err := encodeAll(tests)
	if err != nil {
		return err
	}
	return r.S.Save(mockTestsCollection, recs)
}

// Add appends the test, filling in missing test/question ids. Callers must
// have validated the test first; nothing is checked here.
func (r MockTests) Add(t domain.MockTest) (domain.MockTest, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	for i := range t.Questions {
		if t.Questions[i].ID == "" {
			t.Questions[i].ID = uuid.NewString()
		}
	}
	return t, appendRecord(r.S, mockTestsCollection, t)
}

func (r MockTests) FindByID(id string) (domain.MockTest, bool) {
	for _, t := range r.LoadAll() {
		if t.ID == id {
			return t, true
		}
	}
	return domain.MockTest{}, false
}
