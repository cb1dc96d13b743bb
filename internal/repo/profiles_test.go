package repo

import (
	"testing"

	"localjobs-engine/internal/domain"
)

func TestProfileUpsertReplaces(t *testing.T) {
	r, _ := newTestRepos(t)

	first := domain.Profile{Email: "Me@x.com", Name: "First", College: "A"}
	second := domain.Profile{Email: "me@X.com", Name: "Second", College: "B", CGPA: "8.1"}

	if err := r.Profiles.Upsert(first); err != nil {
		t.Fatal(err)
	}
	if err := r.Profiles.Upsert(second); err != nil {
		t.Fatal(err)
	}

	all := r.Profiles.LoadAll()
	if len(all) != 1 {
		t.Fatalf("expected exactly one profile per email, got %d", len(all))
	}
	if all[0].Name != "Second" || all[0].College != "B" {
		t.Errorf("upsert should hold the second call's data, got %+v", all[0])
	}

	p, ok := r.Profiles.FindByEmail("ME@X.COM")
	if !ok || p.CGPA != "8.1" {
		t.Errorf("FindByEmail case-insensitive lookup failed: %+v ok=%v", p, ok)
	}
}

func TestProfileUpsertAppendsWhenAbsent(t *testing.T) {
	r, _ := newTestRepos(t)

	if err := r.Profiles.Upsert(domain.Profile{Email: "a@x.com", Name: "A"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Profiles.Upsert(domain.Profile{Email: "b@x.com", Name: "B"}); err != nil {
		t.Fatal(err)
	}

	if got := len(r.Profiles.LoadAll()); got != 2 {
		t.Errorf("expected 2 profiles, got %d", got)
	}
}
