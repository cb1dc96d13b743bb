package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func searchPayload(n int) string {
	out := `{"jobs":[`
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"job_id":"J%d","title":"Engineer %d","job_path":"/en/jobs/J%d"}`, i, i, i)
	}
	return out + `]}`
}

func TestAmazonFetchCapsAndPrefixes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") != "0" {
			t.Errorf("offset = %q, want 0", r.URL.Query().Get("offset"))
		}
		fmt.Fprint(w, searchPayload(15))
	}))
	defer srv.Close()

	f := NewAmazon(AmazonConfig{
		BaseURL: srv.URL + "/en/search.json",
		Query:   "sde",
		MaxJobs: 10,
	}, NewHostLimiter(100, 100))

	jobs, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 10 {
		t.Fatalf("len = %d, want 10", len(jobs))
	}
	if jobs[0].ID != "amazon:J0" {
		t.Errorf("id = %q, want amazon:J0", jobs[0].ID)
	}
	if jobs[0].Company != "Amazon" {
		t.Errorf("company = %q, want Amazon", jobs[0].Company)
	}
	if jobs[0].Salary == "" {
		t.Error("salary should carry the default, not be blank")
	}
}

func TestAmazonFetchSkipsIncompleteRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jobs":[
			{"job_id":"ok","title":"Fine"},
			{"job_id":"","title":"No id"},
			{"job_id":"blank-title","title":"  "},
			{"job_id":"ok","title":"Duplicate"}
		]}`)
	}))
	defer srv.Close()

	f := NewAmazon(AmazonConfig{BaseURL: srv.URL, MaxJobs: 10}, NewHostLimiter(100, 100))
	jobs, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 || jobs[0].ID != "amazon:ok" {
		t.Fatalf("jobs = %+v, want the single complete record", jobs)
	}
}

func TestAmazonFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewAmazon(AmazonConfig{BaseURL: srv.URL, MaxJobs: 10}, NewHostLimiter(100, 100))
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected an error on 403")
	}
}

func TestAmazonHydrateFillsDescriptions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/en/search.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchPayload(2))
	})
	mux.HandleFunc("/en/jobs/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><div class="job-description">  Build   things for %s </div></body></html>`, r.URL.Path)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := NewAmazon(AmazonConfig{
		BaseURL: srv.URL + "/en/search.json",
		MaxJobs: 10,
		Hydrate: true,
	}, NewHostLimiter(100, 100))

	jobs, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, j := range jobs {
		if j.Description == "" {
			t.Errorf("job %s has no description after hydrate", j.ID)
		}
	}
	if jobs[0].Description != "Build things for /en/jobs/J0" {
		t.Errorf("description = %q, whitespace not collapsed", jobs[0].Description)
	}
}

func TestCleanText(t *testing.T) {
	if got := CleanText("  a   b\n\tc  "); got != "a b c" {
		t.Errorf("CleanText = %q, want %q", got, "a b c")
	}
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://www.amazon.jobs/en/search.json"
	if got := absoluteURL(base, "/en/jobs/1"); got != "https://www.amazon.jobs/en/jobs/1" {
		t.Errorf("absoluteURL = %q", got)
	}
	if got := absoluteURL(base, "https://x/y"); got != "https://x/y" {
		t.Errorf("absolute href should pass through, got %q", got)
	}
	if got := absoluteURL(base, ""); got != "" {
		t.Errorf("empty href should stay empty, got %q", got)
	}
}
