package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"localjobs-engine/internal/domain"
)

const hydrateWorkers = 4

// AmazonConfig points at an amazon.jobs style search endpoint returning
// {"jobs":[{...}]} pages.
type AmazonConfig struct {
	BaseURL  string // e.g. https://www.amazon.jobs/en/search.json
	Query    string
	Location string
	Country  string
	MaxJobs  int  // hard cap on returned summaries
	Hydrate  bool // fetch each job page for a description
}

type AmazonFetcher struct {
	cfg     AmazonConfig
	hc      *http.Client
	limiter *HostLimiter
}

func NewAmazon(cfg AmazonConfig, limiter *HostLimiter) *AmazonFetcher {
	return &AmazonFetcher{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (f *AmazonFetcher) Name() string { return "amazon" }

// Fetch pulls a single page of summaries, capped at cfg.MaxJobs. Upstream
// records vary between job_id/id and job_url/url keys, so fields are read
// loosely instead of through a fixed struct.
func (f *AmazonFetcher) Fetch(ctx context.Context) ([]domain.Job, error) {
	q := url.Values{}
	q.Set("base_query", f.cfg.Query)
	q.Set("loc_query", f.cfg.Location)
	q.Set("country", f.cfg.Country)
	q.Set("result_limit", fmt.Sprint(f.cfg.MaxJobs))
	q.Set("offset", "0")
	searchURL := f.cfg.BaseURL + "?" + q.Encode()

	if err := f.limiter.WaitURL(ctx, searchURL); err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	req.Header.Set("User-Agent", "LocalJobs/1.0 (+local)")

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amazon get search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("amazon search status %d", res.StatusCode)
	}

	var payload struct {
		Jobs []map[string]any `json:"jobs"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("amazon parse search: %w", err)
	}

	seen := map[string]bool{}
	var jobs []domain.Job
	var pages []string
	for _, raw := range payload.Jobs {
		if len(jobs) >= f.cfg.MaxJobs {
			break
		}
		id := firstString(raw, "job_id", "id")
		title := CleanText(firstString(raw, "title"))
		if id == "" || title == "" {
			continue
		}
		sourceID := "amazon:" + id
		if seen[sourceID] {
			continue
		}
		seen[sourceID] = true

		jobs = append(jobs, domain.Job{
			ID:      sourceID,
			Title:   title,
			Company: "Amazon",
			Salary:  domain.DefaultSalary,
		})
		pages = append(pages, absoluteURL(f.cfg.BaseURL, firstString(raw, "job_url", "url", "job_path")))
	}

	if f.cfg.Hydrate {
		f.hydrate(ctx, jobs, pages)
	}
	return jobs, nil
}

// hydrate fills descriptions from each job page. Errors are ignored per job;
// a summary without a description is still worth returning.
func (f *AmazonFetcher) hydrate(ctx context.Context, jobs []domain.Job, pages []string) {
	var g errgroup.Group
	g.SetLimit(hydrateWorkers)

	for i := range jobs {
		if pages[i] == "" {
			continue
		}
		g.Go(func() error {
			desc, err := f.fetchDescription(ctx, pages[i])
			if err == nil {
				jobs[i].Description = desc
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (f *AmazonFetcher) fetchDescription(ctx context.Context, pageURL string) (string, error) {
	if err := f.limiter.WaitURL(ctx, pageURL); err != nil {
		return "", err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	req.Header.Set("User-Agent", "LocalJobs/1.0 (+local)")

	res, err := f.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("job page status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return "", err
	}
	return CleanText(doc.Find(".job-description").First().Text()), nil
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}

func absoluteURL(base, href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return u.Scheme + "://" + u.Host + href
	}
	return href
}

// CleanText collapses whitespace and nbsp runs in scraped text.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
