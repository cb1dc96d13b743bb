package remote

import (
	"context"

	"localjobs-engine/internal/domain"
)

// Fetcher pulls job summaries from one external listing source. Fetches are
// best-effort: a failing source must degrade to fewer jobs, never block the
// locally stored ones.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Job, error)
}

// Status describes the last refresh for the status endpoint.
type Status struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastAdded int    `json:"last_added"`
	Running   bool   `json:"running"`
}
