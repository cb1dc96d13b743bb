package repo

import (
	"os"
	"path/filepath"
	"testing"

	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/store"
)

func newTestRepos(t *testing.T) (Repos, string) {
	t.Helper()
	dir := t.TempDir()
	return New(store.New(dir)), dir
}

func TestUsersAddAndFind(t *testing.T) {
	r, _ := newTestRepos(t)

	if err := r.Users.Add(domain.User{Email: "User@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	u, ok := r.Users.FindByEmail("user@X.COM")
	if !ok {
		t.Fatal("FindByEmail should match case-insensitively")
	}
	if u.Email != "User@x.com" {
		t.Errorf("stored casing should be preserved, got %q", u.Email)
	}

	if _, ok := r.Users.FindByEmail("other@x.com"); ok {
		t.Error("unknown email should not be found")
	}
}

func TestEnsureAdminSeedsOnce(t *testing.T) {
	r, _ := newTestRepos(t)

	if err := r.Users.EnsureAdmin(); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if err := r.Users.EnsureAdmin(); err != nil {
		t.Fatalf("EnsureAdmin second run: %v", err)
	}

	admins := 0
	for _, u := range r.Users.LoadAll() {
		if u.Email == AdminEmail {
			admins++
			if !u.IsAdmin {
				t.Error("seeded admin must have isAdmin=true")
			}
			if u.Password != AdminPassword {
				t.Errorf("seeded admin password = %q", u.Password)
			}
		}
	}
	if admins != 1 {
		t.Errorf("expected exactly one admin record, got %d", admins)
	}
}

func TestEnsureAdminKeepsExistingUsers(t *testing.T) {
	r, _ := newTestRepos(t)

	if err := r.Users.Add(domain.User{Email: "a@x.com", Password: "pw"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Users.EnsureAdmin(); err != nil {
		t.Fatal(err)
	}

	users := r.Users.LoadAll()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestEnsureAdminReseedsCorruptCollection(t *testing.T) {
	r, dir := newTestRepos(t)

	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.Users.EnsureAdmin(); err != nil {
		t.Fatalf("EnsureAdmin over corrupt collection: %v", err)
	}

	users := r.Users.LoadAll()
	if len(users) != 1 || users[0].Email != AdminEmail {
		t.Errorf("corrupt users collection should reseed to just the admin, got %+v", users)
	}
}

func TestUsersDropMalformedRecords(t *testing.T) {
	r, dir := newTestRepos(t)

	payload := `[{"email":"a@x.com","password":"pw","isAdmin":false},{"email":42}]`
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	users := r.Users.LoadAll()
	if len(users) != 1 || users[0].Email != "a@x.com" {
		t.Errorf("malformed record should be dropped, kept %+v", users)
	}
}
