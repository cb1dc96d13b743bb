package repo

import (
	"encoding/json"
	"log"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/store"
)

// Seed admin credentials. The bootstrap step only ever adds this record,
// never removes or rewrites an existing one.
const (
	AdminEmail    = "admin@mail.com"
	AdminPassword = "1234"
)

type Users struct {
	S *store.Store
}

func (r Users) LoadAll() []domain.User {
	return decodeAll[domain.User](usersCollection, r.S.Load(usersCollection))
}

func (r Users) SaveAll(users []domain.User) error {
	recs, err := encodeAll(users)
	if err != nil {
		return err
	}
	return r.S.Save(usersCollection, recs)
}

// Add appends unconditionally. Uniqueness is the caller's job: registration
// pre-checks with FindByEmail before calling Add.
func (r Users) Add(u domain.User) error {
	return appendRecord(r.S, usersCollection, u)
}

func (r Users) FindByEmail(email string) (domain.User, bool) {
	for _, u := range r.LoadAll() {
		if domain.SameEmail(u.Email, email) {
			return u, true
		}
	}
	return domain.User{}, false
}

// EnsureAdmin seeds the admin account if the users collection lacks it. A
// corrupt collection reads as empty, so the admin is reseeded in that case
// too. Idempotent: running it twice never yields two admin records.
func (r Users) EnsureAdmin() error {
	return r.S.Update(usersCollection, func(recs []json.RawMessage) ([]json.RawMessage, error) {
		for _, u := range decodeAll[domain.User](usersCollection, recs) {
			if domain.SameEmail(u.Email, AdminEmail) {
				return recs, nil
			}
		}
		admin := domain.User{Email: AdminEmail, Password: AdminPassword, IsAdmin: true}
		b, err := json.Marshal(admin)
		if err != nil {
			return nil, err
		}
		log.Printf("[seed] admin account inserted")
		return append(recs, b), nil
	})
}
