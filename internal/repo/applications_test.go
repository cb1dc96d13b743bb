package repo

import "testing"

func TestAddApplicantIdempotent(t *testing.T) {
	r, _ := newTestRepos(t)

	if err := r.Applications.AddApplicant("job-1", "Me@x.com"); err != nil {
		t.Fatal(err)
	}
	// Same applicant again, different casing: must stay a single entry.
	if err := r.Applications.AddApplicant("job-1", "me@X.COM"); err != nil {
		t.Fatal(err)
	}

	got := r.Applications.GetApplicants("job-1")
	if len(got) != 1 {
		t.Fatalf("expected 1 applicant, got %v", got)
	}
	if got[0] != "Me@x.com" {
		t.Errorf("first-applied casing should be kept, got %q", got[0])
	}
}

func TestAddApplicantCreatesLinkLazily(t *testing.T) {
	r, _ := newTestRepos(t)

	if got := r.Applications.GetApplicants("job-9"); len(got) != 0 {
		t.Fatalf("no link should exist yet, got %v", got)
	}

	if err := r.Applications.AddApplicant("job-9", "a@x.com"); err != nil {
		t.Fatal(err)
	}
	if err := r.Applications.AddApplicant("job-9", "b@x.com"); err != nil {
		t.Fatal(err)
	}

	got := r.Applications.GetApplicants("job-9")
	if len(got) != 2 {
		t.Errorf("expected 2 applicants, got %v", got)
	}
}

func TestApplicationsSeparatePerJob(t *testing.T) {
	r, _ := newTestRepos(t)

	if err := r.Applications.AddApplicant("job-1", "a@x.com"); err != nil {
		t.Fatal(err)
	}
	if err := r.Applications.AddApplicant("job-2", "a@x.com"); err != nil {
		t.Fatal(err)
	}

	if got := len(r.Applications.LoadAll()); got != 2 {
		t.Errorf("expected 2 links, got %d", got)
	}
	if got := r.Applications.GetApplicants("job-2"); len(got) != 1 {
		t.Errorf("job-2 should have 1 applicant, got %v", got)
	}
}
