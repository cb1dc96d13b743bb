package repo

import (
	"encoding/json"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/store"
)

type Profiles struct {
	S *store.Store
}

func (r Profiles) LoadAll() []domain.Profile {
	return decodeAll[domain.Profile](profilesCollection, r.S.Load(profilesCollection))
}

func (r Profiles) SaveAll(profiles []domain.Profile) error {
	recs, err := encodeAll(profiles)
	if err != nil {
		return err
	}
	return r.S.Save(profilesCollection, recs)
}

// Upsert replaces the profile whose email matches case-insensitively, or
// appends when none matches. One profile per email is the invariant.
func (r Profiles) Upsert(p domain.Profile) error {
	return r.S.Update(profilesCollection, func(recs []json.RawMessage) ([]json.RawMessage, error) {
		profiles := decodeAll[domain.Profile](profilesCollection, recs)
		replaced := false
		for i := range profiles {
			if domain.SameEmail(profiles[i].Email, p.Email) {
				profiles[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			profiles = append(profiles, p)
		}
		return encodeAll(profiles)
	})
}

func (r Profiles) FindByEmail(email string) (domain.Profile, bool) {
	for _, p := range r.LoadAll() {
		if domain.SameEmail(p.Email, email) {
			return p, true
		}
	}
	return domain.Profile{}, false
}
